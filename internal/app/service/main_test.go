package service

import (
	"os"
	"testing"

	"github.com/pavelpernicka/scoutcomp/pkg/translator"
)

const translationFolder = "../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageCs, translator.LanguageEn},
	})
	os.Exit(m.Run())
}
