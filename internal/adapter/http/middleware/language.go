package middleware

import (
	"github.com/pavelpernicka/scoutcomp/pkg/translator"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware picks the response language from the Accept-Language
// header, falling back to the default.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Keep language handling simple for now: use raw header value.
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageCs
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageCs
}
