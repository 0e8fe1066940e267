package ytprompt

import "testing"

func TestSelectPreferManual(t *testing.T) {
	manual := TranscriptDescriptor{LanguageCode: "en", Generated: false}
	generated := TranscriptDescriptor{LanguageCode: "es", Generated: true}

	tests := []struct {
		name   string
		list   []TranscriptDescriptor
		want   string
		wantOK bool
	}{
		{
			name:   "manual first",
			list:   []TranscriptDescriptor{manual, generated},
			want:   "en",
			wantOK: true,
		},
		{
			name:   "manual preferred regardless of order",
			list:   []TranscriptDescriptor{generated, manual},
			want:   "en",
			wantOK: true,
		},
		{
			name: "all generated picks first enumerated",
			list: []TranscriptDescriptor{
				{LanguageCode: "fr", Generated: true},
				{LanguageCode: "de", Generated: true},
			},
			want:   "fr",
			wantOK: true,
		},
		{
			name:   "empty enumeration",
			list:   nil,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectPreferManual(tt.list)
			if ok != tt.wantOK {
				t.Fatalf("SelectPreferManual() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.LanguageCode != tt.want {
				t.Errorf("SelectPreferManual() = %q, want %q", got.LanguageCode, tt.want)
			}
		})
	}
}

func TestSelectByLanguage(t *testing.T) {
	tests := []struct {
		name   string
		list   []TranscriptDescriptor
		prefs  []string
		want   string
		wantOK bool
	}{
		{
			name: "first preference wins",
			list: []TranscriptDescriptor{
				{LanguageCode: "en"},
				{LanguageCode: "es"},
			},
			prefs:  []string{"es", "en"},
			want:   "es",
			wantOK: true,
		},
		{
			name: "falls through to later preference",
			list: []TranscriptDescriptor{
				{LanguageCode: "fr"},
				{LanguageCode: "en"},
			},
			prefs:  []string{"es", "en"},
			want:   "en",
			wantOK: true,
		},
		{
			name: "case-insensitive match",
			list: []TranscriptDescriptor{
				{LanguageCode: "ES"},
			},
			prefs:  []string{"es"},
			want:   "ES",
			wantOK: true,
		},
		{
			name: "manual beats generated within one code",
			list: []TranscriptDescriptor{
				{LanguageCode: "es", LanguageName: "auto", Generated: true},
				{LanguageCode: "es", LanguageName: "manual", Generated: false},
			},
			prefs:  []string{"es"},
			want:   "es",
			wantOK: true,
		},
		{
			name: "no preference matches",
			list: []TranscriptDescriptor{
				{LanguageCode: "xx"},
			},
			prefs:  []string{"es", "en"},
			wantOK: false,
		},
		{
			name:   "empty list",
			list:   nil,
			prefs:  FallbackLanguages,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectByLanguage(tt.list, tt.prefs)
			if ok != tt.wantOK {
				t.Fatalf("SelectByLanguage() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.LanguageCode != tt.want {
				t.Errorf("SelectByLanguage() = %q, want %q", got.LanguageCode, tt.want)
			}
		})
	}

	t.Run("manual preferred within code", func(t *testing.T) {
		list := []TranscriptDescriptor{
			{LanguageCode: "es", LanguageName: "auto", Generated: true},
			{LanguageCode: "es", LanguageName: "manual", Generated: false},
		}
		got, ok := SelectByLanguage(list, []string{"es"})
		if !ok || got.LanguageName != "manual" {
			t.Errorf("SelectByLanguage() = %+v, ok=%v, want the manual track", got, ok)
		}
	})
}
