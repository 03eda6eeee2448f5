package seasonal

import (
	"errors"
	"testing"
	"time"

	mwerrors "github.com/julianstephens/mealweek/internal/errors"
)

func fixedClock(month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(2024, month, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		key     string
		want    time.Month
		wantErr bool
	}{
		{key: "1", want: time.January},
		{key: "12", want: time.December},
		{key: "March", want: time.March},
		{key: "sep", want: time.September},
		{key: "  OCTOBER ", want: time.October},
		{key: "février", want: time.February},
		{key: "Août", want: time.August},
		{key: "decembre", want: time.December},
		{key: "0", wantErr: true},
		{key: "13", wantErr: true},
		{key: "", wantErr: true},
		{key: "brumaire", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseMonth(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonth(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestAddRejectsDuplicateMonth(t *testing.T) {
	c := New()
	if err := c.Add(time.May, "asparagus"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := c.Add(time.May, "radish"); !errors.Is(err, ErrDuplicateMonth) {
		t.Errorf("Add of duplicate month = %v, want ErrDuplicateMonth", err)
	}
}

func TestRestrictedIngredients(t *testing.T) {
	c := New()
	_ = c.Add(time.January, "leek", "cabbage")
	_ = c.Add(time.July, "tomato", "leek")

	got := c.RestrictedIngredients()
	want := []string{"leek", "cabbage", "tomato", "leek"}
	if len(got) != len(want) {
		t.Fatalf("RestrictedIngredients() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RestrictedIngredients()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCurrentIngredients(t *testing.T) {
	c := New(WithClock(fixedClock(time.July)))
	_ = c.Add(time.January, "leek")
	_ = c.Add(time.July, "tomato", "zucchini")

	got, err := c.CurrentIngredients()
	if err != nil {
		t.Fatalf("CurrentIngredients failed: %v", err)
	}
	if len(got) != 2 || got[0] != "tomato" || got[1] != "zucchini" {
		t.Errorf("CurrentIngredients() = %v, want [tomato zucchini]", got)
	}
}

func TestCurrentMonthMissing(t *testing.T) {
	c := New(WithClock(fixedClock(time.March)))
	_ = c.Add(time.January, "leek")

	_, err := c.CurrentIngredients()
	if !errors.Is(err, ErrMonthNotFound) {
		t.Fatalf("CurrentIngredients() error = %v, want ErrMonthNotFound", err)
	}
	var lookupErr *mwerrors.LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("error %T is not a LookupError", err)
	}
	if lookupErr.Key != "March" {
		t.Errorf("LookupError.Key = %q, want March", lookupErr.Key)
	}
}

func TestInSeason(t *testing.T) {
	c := New(WithClock(fixedClock(time.July)))
	_ = c.Add(time.January, "leek")
	_ = c.Add(time.July, "tomato")

	tests := []struct {
		ingredient string
		want       bool
	}{
		{"tomato", true},
		{"leek", false},
		{"pasta", true},
	}

	for _, tt := range tests {
		t.Run(tt.ingredient, func(t *testing.T) {
			got, err := c.InSeason(tt.ingredient)
			if err != nil {
				t.Fatalf("InSeason(%q) failed: %v", tt.ingredient, err)
			}
			if got != tt.want {
				t.Errorf("InSeason(%q) = %v, want %v", tt.ingredient, got, tt.want)
			}
		})
	}

	if !c.IsRestricted("leek") || c.IsRestricted("pasta") {
		t.Error("IsRestricted disagrees with calendar contents")
	}
}
