package catalog

import (
	"slices"
	"testing"

	"github.com/n0roo/workshop/internal/idea"
)

func scenarioIdeas() []idea.Idea {
	return []idea.Idea{
		{ID: "1", Status: idea.StatusProcessed, Description: "Минималистичный обеденный стол"},
		{ID: "2", Status: idea.StatusProcessed, Description: "Детали японских соединений"},
		{ID: "3", Status: idea.StatusInbox, Description: "Эскиз стула"},
	}
}

func ids(ideas []idea.Idea) []string {
	out := make([]string, 0, len(ideas))
	for _, it := range ideas {
		out = append(out, it.ID)
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	vm := New(scenarioIdeas())

	if vm.ActiveSection() != SectionCatalog {
		t.Errorf("ActiveSection = %v, want catalog", vm.ActiveSection())
	}
	if vm.SearchQuery() != "" {
		t.Errorf("SearchQuery = %q, want empty", vm.SearchQuery())
	}
	if _, ok := vm.Selected(); ok {
		t.Error("no idea should be selected initially")
	}
	if vm.ID() == "" {
		t.Error("session id should be set")
	}
	if New(nil).ID() == vm.ID() {
		t.Error("sessions should get distinct ids")
	}
}

func TestScenario(t *testing.T) {
	vm := New(scenarioIdeas())

	if got := ids(vm.Visible()); !slices.Equal(got, []string{"1", "2"}) {
		t.Errorf("catalog = %v, want [1 2]", got)
	}

	vm.SetActiveSection(SectionInbox)
	if got := ids(vm.Visible()); !slices.Equal(got, []string{"3"}) {
		t.Errorf("inbox = %v, want [3]", got)
	}

	vm.SetActiveSection(SectionCatalog)
	vm.SetSearchQuery("стол")
	if got := ids(vm.Visible()); !slices.Equal(got, []string{"1"}) {
		t.Errorf("catalog+стол = %v, want [1]", got)
	}
}

func TestSectionStatusMapping(t *testing.T) {
	collections := [][]idea.Idea{
		scenarioIdeas(),
		idea.Seed(),
		nil,
		{{ID: "x", Status: idea.StatusInbox}},
	}
	want := map[Section]idea.Status{
		SectionInbox:   idea.StatusInbox,
		SectionCatalog: idea.StatusProcessed,
	}

	for _, c := range collections {
		vm := New(c)
		for section, status := range want {
			vm.SetActiveSection(section)
			for it := range vm.VisibleIdeas() {
				if it.Status != status {
					t.Errorf("%s shows idea %s with status %s", section, it.ID, it.Status)
				}
			}
		}
	}
}

func TestProjectsAlwaysEmpty(t *testing.T) {
	vm := New(append(scenarioIdeas(), idea.Seed()[0]))
	vm.SetActiveSection(SectionProjects)

	for _, q := range []string{"", "стол", "x"} {
		vm.SetSearchQuery(q)
		if got := vm.Visible(); len(got) != 0 {
			t.Errorf("projects with query %q = %v, want empty", q, ids(got))
		}
	}
}

func TestEmptyQueryIsNoop(t *testing.T) {
	vm := New(idea.Seed())
	vm.SetSearchQuery("")

	var want []string
	for _, it := range idea.Seed() {
		if it.Status == idea.StatusProcessed {
			want = append(want, it.ID)
		}
	}
	if got := ids(vm.Visible()); !slices.Equal(got, want) {
		t.Errorf("Visible() = %v, want %v", got, want)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	vm := New(idea.Seed())

	vm.SetSearchQuery("ДУБ")
	upper := ids(vm.Visible())
	vm.SetSearchQuery("дуб")
	lower := ids(vm.Visible())

	if !slices.Equal(upper, lower) {
		t.Errorf("ДУБ = %v, дуб = %v", upper, lower)
	}
	if !slices.Equal(lower, []string{"1"}) {
		t.Errorf("дуб = %v, want [1]", lower)
	}
}

func TestSearchIgnoresTags(t *testing.T) {
	vm := New(idea.Seed())

	// "Шиповое" есть только в тегах идеи 1
	vm.SetSearchQuery("Шиповое")
	if got := vm.Visible(); len(got) != 0 {
		t.Errorf("tag-only match should be excluded, got %v", ids(got))
	}
}

func TestMatchesQuery(t *testing.T) {
	it := idea.Idea{
		ID:          "1",
		Status:      idea.StatusProcessed,
		Description: "Обеденный стол из ДУБА",
		Tags:        idea.Tags{idea.TagMaterial: {"Ясень"}},
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"дуба", true},
		{"ОБЕДЕННЫЙ", true},
		{"стол из", true},
		{"ясень", false},
		{"стул", false},
	}
	for _, tt := range tests {
		if got := MatchesQuery(it, tt.query); got != tt.want {
			t.Errorf("MatchesQuery(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSearchQueryStoredVerbatim(t *testing.T) {
	vm := New(nil)
	vm.SetSearchQuery("  Стол ")
	if vm.SearchQuery() != "  Стол " {
		t.Errorf("SearchQuery = %q", vm.SearchQuery())
	}

	vm.SetIdeas(scenarioIdeas())
	if got := vm.Visible(); len(got) != 0 {
		t.Errorf("untrimmed query should not match, got %v", ids(got))
	}
}

func TestSelectionIndependentOfSection(t *testing.T) {
	vm := New(scenarioIdeas())
	inbox := scenarioIdeas()[2]

	// 카탈로그에서 보이지 않는 아이디어도 선택 가능
	vm.Select(inbox)
	for _, s := range Sections {
		vm.SetActiveSection(s)
		got, ok := vm.Selected()
		if !ok || got.ID != "3" {
			t.Errorf("after switching to %s selected = %v, %v", s, got.ID, ok)
		}
	}

	vm.ClearSelection()
	if _, ok := vm.Selected(); ok {
		t.Error("selection should be cleared")
	}
}

func TestQueryPersistsAcrossSections(t *testing.T) {
	vm := New(scenarioIdeas())
	vm.SetSearchQuery("эскиз")
	vm.SetActiveSection(SectionInbox)

	if vm.SearchQuery() != "эскиз" {
		t.Errorf("SearchQuery = %q", vm.SearchQuery())
	}
	if got := ids(vm.Visible()); !slices.Equal(got, []string{"3"}) {
		t.Errorf("inbox+эскиз = %v, want [3]", got)
	}
}

func TestSetActiveSectionIdempotent(t *testing.T) {
	once := New(scenarioIdeas())
	once.SetSearchQuery("д")
	once.SetActiveSection(SectionInbox)

	twice := New(scenarioIdeas())
	twice.SetSearchQuery("д")
	twice.SetActiveSection(SectionInbox)
	twice.SetActiveSection(SectionInbox)

	a, b := once.Snapshot(), twice.Snapshot()
	if a.ActiveSection != b.ActiveSection || a.SearchQuery != b.SearchQuery {
		t.Errorf("state differs: %+v vs %+v", a, b)
	}
	if !slices.Equal(ids(once.Visible()), ids(twice.Visible())) {
		t.Error("visible ideas differ")
	}
}

func TestVisibleIdeasRestartable(t *testing.T) {
	vm := New(idea.Seed())
	seq := vm.VisibleIdeas()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(ids(first), ids(second)) {
		t.Errorf("first = %v, second = %v", ids(first), ids(second))
	}

	// early break must not panic
	for range seq {
		break
	}
}

func TestCollectionIsCopied(t *testing.T) {
	src := scenarioIdeas()
	vm := New(src)
	src[0].Status = idea.StatusInbox
	src[0].Description = "changed"

	got := vm.Visible()
	if len(got) != 2 || got[0].Description != "Минималистичный обеденный стол" {
		t.Errorf("view model affected by caller mutation: %v", got)
	}
}

func TestInboxCount(t *testing.T) {
	vm := New(idea.Seed())
	vm.SetActiveSection(SectionProjects)
	vm.SetSearchQuery("nothing matches this")

	if n := vm.InboxCount(); n != 1 {
		t.Errorf("InboxCount = %d, want 1", n)
	}
}

func TestSetIdeasKeepsState(t *testing.T) {
	vm := New(scenarioIdeas())
	vm.SetActiveSection(SectionInbox)
	vm.SetSearchQuery("стул")
	vm.Select(scenarioIdeas()[0])

	vm.SetIdeas(idea.Seed())

	if vm.ActiveSection() != SectionInbox || vm.SearchQuery() != "стул" {
		t.Errorf("state changed: %+v", vm.Snapshot())
	}
	if got, ok := vm.Selected(); !ok || got.ID != "1" {
		t.Errorf("selection lost: %v %v", got.ID, ok)
	}
	if got := ids(vm.Visible()); !slices.Equal(got, []string{"3"}) {
		t.Errorf("Visible() = %v, want [3]", got)
	}
}

func TestParseSection(t *testing.T) {
	for _, s := range Sections {
		got, err := ParseSection(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSection(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseSection("archive"); err == nil {
		t.Error("expected error for unknown section")
	}
}
