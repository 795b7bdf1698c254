package lookup

import "testing"

func TestSearchByKeyword(t *testing.T) {
	got := Search("what is today's lunch menu")
	if len(got) != 1 || got[0].Category != CategoryKitchen {
		t.Fatalf("Search(lunch) = %+v", got)
	}
	if got := Search("where is the VIP parking"); len(got) != 1 || got[0].Category != CategoryLocation {
		t.Fatalf("Search(parking) = %+v", got)
	}
	if got := Search("asdf"); len(got) != 0 {
		t.Fatalf("Search(asdf) = %+v, want none", got)
	}
}

func TestSearchReturnsCopies(t *testing.T) {
	first := Search("kitchen")
	first[0].Details[0] = "mutated"
	if Search("kitchen")[0].Details[0] == "mutated" {
		t.Fatalf("Search leaked the underlying record")
	}
}

func TestFestivalFor(t *testing.T) {
	f, ok := FestivalFor("how are Dasara preparations going")
	if !ok || f.Name != "Sharan Navaratri" {
		t.Fatalf("FestivalFor(Dasara) = %+v, %v", f, ok)
	}
	if f.Readiness() != 62 {
		t.Fatalf("Readiness = %d, want 62", f.Readiness())
	}
	if _, ok := FestivalFor("car festival status"); !ok {
		t.Fatalf("expected phrase alias to match")
	}
	if _, ok := FestivalFor("holi"); ok {
		t.Fatalf("unexpected festival match")
	}
	if (Festival{}).Readiness() != 0 {
		t.Fatalf("empty festival readiness should be zero")
	}
}
