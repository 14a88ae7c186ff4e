package translator

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// Notification message keys. The message text lives in the translation files;
// the engine only picks the key and supplies the template data.
const (
	MsgCompletionApproved      = "completionApproved"
	MsgCompletionRejected      = "completionRejected"
	MsgAdminCompletionApproved = "adminCompletionApproved"
	MsgAdminCompletionRejected = "adminCompletionRejected"
	MsgNoReasonProvided        = "noReasonProvided"
)

// CompletionApprovedMessage builds the localized notification for an approved
// completion.
func CompletionApprovedMessage(lang, taskName string, count int, points float64) string {
	return localize(lang, MsgCompletionApproved, map[string]interface{}{
		"TaskName": taskName,
		"Count":    count,
		"Points":   formatPoints(points),
	})
}

// CompletionRejectedMessage builds the localized notification for a rejected
// completion. A missing reason falls back to a localized placeholder.
func CompletionRejectedMessage(lang, taskName string, reason *string) string {
	return localize(lang, MsgCompletionRejected, map[string]interface{}{
		"TaskName": taskName,
		"Reason":   reasonOrPlaceholder(lang, reason),
	})
}

func AdminCompletionApprovedMessage(lang, taskName string, count int, points float64) string {
	return localize(lang, MsgAdminCompletionApproved, map[string]interface{}{
		"TaskName": taskName,
		"Count":    count,
		"Points":   formatPoints(points),
	})
}

func AdminCompletionRejectedMessage(lang, taskName string, reason *string) string {
	return localize(lang, MsgAdminCompletionRejected, map[string]interface{}{
		"TaskName": taskName,
		"Reason":   reasonOrPlaceholder(lang, reason),
	})
}

func reasonOrPlaceholder(lang string, reason *string) string {
	if reason != nil && *reason != "" {
		return *reason
	}
	return localize(lang, MsgNoReasonProvided, nil)
}

func localize(lang, msgKey string, data map[string]interface{}) string {
	l := i18n.NewLocalizer(Translator, lang, LanguageCs, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    msgKey,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("notification translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}

// formatPoints renders awards without a trailing fraction for whole values.
func formatPoints(points float64) string {
	return fmt.Sprintf("%g", points)
}
