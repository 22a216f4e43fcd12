// Package i18n renders issue codes as human messages.
package i18n

import "golang.org/x/text/language"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" and "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg := t.base(code)
	if exp, got := data["expected"], data["got"]; exp != "" && got != "" {
		if t.lang == "ja" {
			return msg + "（期待: " + exp + "、実際: " + got + "）"
		}
		return msg + " (expected " + exp + ", got " + got + ")"
	}
	return msg
}

func (t dictTranslator) base(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "duplicate_key":
			return "キーが重複しています"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "入力が大きすぎます"
		case "overflow":
			return "数値が表現できる範囲を超えました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "duplicate_key":
			return "duplicate key"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "input too large"
		case "overflow":
			return "number out of range"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

var supportedTags = []language.Tag{
	language.English,
	language.Japanese,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Resolve maps a BCP 47 tag ("ja", "ja-JP", "en-GB") to the closest supported
// language. Unknown or malformed tags resolve to English.
func Resolve(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return supportedTags[idx]
}

// SetLanguage switches the built-in Translator language. See Resolve.
func SetLanguage(lang string) {
	base, _ := Resolve(lang).Base()
	currentTranslator = dictTranslator{lang: base.String()}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
