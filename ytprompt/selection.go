package ytprompt

import "strings"

// FallbackLanguages is the CLI variant's preference order: Spanish, then
// English, then the remaining caption language codes YouTube serves.
var FallbackLanguages = []string{
	"es", "en", "aa", "ab", "af", "ak", "sq", "am", "ar", "hy", "as", "ay",
	"az", "bn", "ba", "eu", "be", "bho", "bs", "br", "bg", "my", "ca", "ceb",
	"zh-Hans", "zh-Hant", "co", "hr", "cs", "da", "dv", "nl", "dz", "eo",
	"et", "ee", "fo", "fj", "fil", "fi", "fr", "fy", "gl", "ka", "de", "el",
	"gn", "gu", "ht", "ha", "haw", "iw", "hi", "hmn", "hu", "is", "ig", "id",
	"ga", "it", "ja", "jv", "kn", "kk", "km", "rw", "ko", "kri", "ku", "ky",
	"lo", "la", "lv", "ln", "lt", "lg", "lb", "mk", "mg", "ms", "ml", "mt",
	"mi", "mr", "mn", "ne", "nso", "no", "ny", "or", "om", "ps", "fa", "pl",
	"pt", "pa", "qu", "ro", "ru", "sm", "sa", "gd", "sr", "sn", "sd", "si",
	"sk", "sl", "so", "st", "es", "su", "sw", "ss", "sv", "tg", "ta", "tt",
	"te", "th", "ti", "ts", "tr", "tk", "uk", "ur", "ug", "uz", "vi", "cy",
	"xh", "yi", "yo", "zu",
}

// SelectPreferManual picks the first manually authored track, falling back to
// the first advertised track when every entry is machine generated. The
// second return is false only for an empty list.
func SelectPreferManual(list []TranscriptDescriptor) (TranscriptDescriptor, bool) {
	if len(list) == 0 {
		return TranscriptDescriptor{}, false
	}
	for _, d := range list {
		if !d.Generated {
			return d, true
		}
	}
	return list[0], true
}

// SelectByLanguage picks the first track matching the earliest preferred
// language code. Within one code a manual track wins over a generated one.
// Matching is case-insensitive.
func SelectByLanguage(list []TranscriptDescriptor, prefs []string) (TranscriptDescriptor, bool) {
	for _, code := range prefs {
		var generated TranscriptDescriptor
		found := false
		for _, d := range list {
			if !strings.EqualFold(d.LanguageCode, code) {
				continue
			}
			if !d.Generated {
				return d, true
			}
			if !found {
				generated = d
				found = true
			}
		}
		if found {
			return generated, true
		}
	}
	return TranscriptDescriptor{}, false
}
