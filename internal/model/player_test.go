package model

import (
	"testing"
	"time"
)

func TestPlayerAge(t *testing.T) {
	p := &Player{}
	p.ChangeBirthday(time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC), 24},
		{time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 25},
		{time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC), 24},
		{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 25},
	}
	for _, tc := range cases {
		if got := p.Age(tc.now); got != tc.want {
			t.Fatalf("age at %s: expected %d, got %d", tc.now.Format(time.DateOnly), tc.want, got)
		}
	}
}

func TestPlayerAgeWithoutBirthday(t *testing.T) {
	if age := (&Player{}).Age(time.Now()); age != 0 {
		t.Fatalf("expected 0, got %d", age)
	}
}

func TestPlayerSetters(t *testing.T) {
	p := &Player{ID: 7}
	p.ChangeName("Serena", "Williams")
	p.ChangeEmail("serena@example.com")
	p.ChangePhone("555-2222")
	p.ChangeGender(GenderWomens)
	p.UpdateRating(-40)

	if p.FirstName != "Serena" || p.LastName != "Williams" {
		t.Fatalf("unexpected name %q %q", p.FirstName, p.LastName)
	}
	if p.Email != "serena@example.com" || p.Phone != "555-2222" {
		t.Fatalf("unexpected contact %q %q", p.Email, p.Phone)
	}
	if p.Gender != GenderWomens {
		t.Fatalf("expected WOMENS, got %s", p.Gender)
	}
	if p.Rating != -40 {
		t.Fatalf("expected negative rating to be kept, got %d", p.Rating)
	}
}

func TestPlayerSameAs(t *testing.T) {
	a := &Player{ID: 1, FirstName: "A"}
	b := &Player{ID: 1, FirstName: "B"}
	c := &Player{ID: 2, FirstName: "A"}
	if !a.SameAs(b) {
		t.Fatal("expected same identity to match")
	}
	if a.SameAs(c) || a.SameAs(nil) {
		t.Fatal("expected different identity not to match")
	}
}

func TestGender(t *testing.T) {
	if !GenderMens.Valid() || !GenderWomens.Valid() || !GenderCoed.Valid() || Gender(0).Valid() || Gender(4).Valid() {
		t.Fatal("unexpected validity")
	}
	if !GenderCoed.Admits(GenderMens) || !GenderCoed.Admits(GenderWomens) {
		t.Fatal("expected co-ed to admit everyone")
	}
	if GenderMens.Admits(GenderWomens) || !GenderWomens.Admits(GenderWomens) {
		t.Fatal("unexpected restricted admission")
	}
	if Gender(9).String() != "GENDER_9" || GenderCoed.String() != "CO_ED" {
		t.Fatalf("unexpected labels %s %s", Gender(9), GenderCoed)
	}
}
