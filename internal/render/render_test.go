package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/frholidays/internal/domain/models"
)

var sample = []models.YearHolidays{{
	Year: 2021,
	Holidays: []models.Holiday{
		{Key: "new-years-day", Name: "New Year's Day", FrenchName: "Jour de l'an", Date: "2021-01-01"},
		{Key: "easter-monday", Name: "Easter Monday", FrenchName: "Lundi de Pâques", Date: "2021-04-05", Movable: true},
	},
}}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": Text, "text": Text, "JSON": JSON, "yaml": YAML, "yml": YAML}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q)=%q,%v want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}

func TestYears_AllFormats(t *testing.T) {
	var buf bytes.Buffer
	if err := Years(&buf, Text, sample); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "# 2021 (2 holidays)") || !strings.Contains(buf.String(), "2021-04-05") {
		t.Fatalf("unexpected text output:\n%s", buf.String())
	}

	buf.Reset()
	if err := Years(&buf, JSON, sample); err != nil {
		t.Fatal(err)
	}
	var fromJSON []models.YearHolidays
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil || fromJSON[0].Holidays[1].Key != "easter-monday" {
		t.Fatalf("bad json %v: %s", err, buf.String())
	}

	buf.Reset()
	if err := Years(&buf, YAML, sample); err != nil {
		t.Fatal(err)
	}
	var fromYAML []models.YearHolidays
	if err := yaml.Unmarshal(buf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("bad yaml: %v\n%s", err, buf.String())
	}
	if fromYAML[0].Year != 2021 || !fromYAML[0].Holidays[1].Movable || fromYAML[0].Holidays[1].FrenchName != "Lundi de Pâques" {
		t.Fatalf("unexpected yaml decode: %+v", fromYAML)
	}
}

func TestCheck_Text(t *testing.T) {
	var buf bytes.Buffer
	_ = Check(&buf, Text, models.Check{Date: "2021-05-09"})
	if buf.String() != "2021-05-09 is not a bank holiday\n" {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	h := models.Holiday{Name: "Victory in Europe Day", FrenchName: "8 mai 1945"}
	_ = Check(&buf, Text, models.Check{Date: "2021-05-08", IsHoliday: true, Holiday: &h})
	if !strings.HasPrefix(buf.String(), "2021-05-08 is a bank holiday: Victory in Europe Day") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestDates(t *testing.T) {
	var buf bytes.Buffer
	_ = Dates(&buf, Text, []string{"2021-05-14", "2021-05-12"})
	if buf.String() != "2021-05-14\n2021-05-12\n" {
		t.Fatalf("got %q", buf.String())
	}
	buf.Reset()
	_ = Dates(&buf, YAML, []string{"2021-05-14"})
	var back []string
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil || len(back) != 1 || back[0] != "2021-05-14" {
		t.Fatalf("yaml round trip failed: %v %q", err, buf.String())
	}
}

func TestShift(t *testing.T) {
	s := models.BusinessShift{
		From: "2021-05-12", N: 2, Date: "2021-05-17",
		Skipped: []models.Closure{{Date: "2021-05-13", Name: "Ascension Thursday"}},
	}

	var buf bytes.Buffer
	if err := Shift(&buf, Text, s); err != nil {
		t.Fatalf("text: %v", err)
	}
	want := "2021-05-12 +2 business days = 2021-05-17\nskipped  2021-05-13  Ascension Thursday\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}

	buf.Reset()
	if err := Shift(&buf, YAML, s); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var back models.BusinessShift
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil || back.Date != "2021-05-17" || len(back.Skipped) != 1 {
		t.Fatalf("yaml round trip failed: %v %q", err, buf.String())
	}
}
