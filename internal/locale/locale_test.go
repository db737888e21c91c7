package locale

import "testing"

func TestNoInfo_KnownLanguages(t *testing.T) {
	if got := NoInfo("en"); got != "I don't have information about that in my knowledge base." {
		t.Errorf("NoInfo(en) = %q", got)
	}
	if got := NoInfo("es"); got != "No tengo información sobre eso en mi base de conocimientos." {
		t.Errorf("NoInfo(es) = %q", got)
	}
}

func TestNoInfo_UnknownFallsBackToEnglish(t *testing.T) {
	want := NoInfo("en")
	for _, lang := range []string{"xx", "", "EN", "klingon"} {
		if got := NoInfo(lang); got != want {
			t.Errorf("NoInfo(%q) = %q, want English fallback", lang, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"en", "en"},
		{"ja", "ja"},
		{"", "en"},
		{"xx", "en"},
		{"ES", "en"}, // codes are case-sensitive by contract
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEveryLanguageHasTables(t *testing.T) {
	for _, l := range Languages {
		if !Supported(l.Code) {
			t.Errorf("language %s has no refusal string", l.Code)
		}
		if _, ok := uiText[l.Code]; !ok {
			t.Errorf("language %s has no UI text table", l.Code)
		}
	}
	if len(noInfoResponses) != len(Languages) {
		t.Errorf("%d refusal strings for %d languages", len(noInfoResponses), len(Languages))
	}
}

func TestUIText_Fallback(t *testing.T) {
	def := UIText("en")
	if def["newChat"] == "" {
		t.Fatal("English UI table missing newChat")
	}
	got := UIText("xx")
	if got["newChat"] != def["newChat"] {
		t.Errorf("unknown language did not fall back to English table")
	}
}

func TestUIText_SameKeysPerLanguage(t *testing.T) {
	def := uiText[DefaultLanguage]
	for lang, table := range uiText {
		if len(table) != len(def) {
			t.Errorf("language %s has %d keys, want %d", lang, len(table), len(def))
			continue
		}
		for key := range def {
			if _, ok := table[key]; !ok {
				t.Errorf("language %s missing key %s", lang, key)
			}
		}
	}
}
