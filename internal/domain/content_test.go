package domain

import (
	"testing"
)

func TestGroupByCategoryOrder(t *testing.T) {
	items := []ContentItem{
		{Title: "A", Category: "X"},
		{Title: "B", Category: "Y"},
		{Title: "C", Category: "X"},
	}

	groups := GroupByCategory(items)

	if len(groups) != 2 {
		t.Fatalf("GroupByCategory() returned %d groups, want 2", len(groups))
	}
	if groups[0].Name != "X" || groups[1].Name != "Y" {
		t.Errorf("group order = [%s, %s], want [X, Y] (first-seen order)", groups[0].Name, groups[1].Name)
	}
	if len(groups[0].Items) != 2 || groups[0].Items[0].Title != "A" || groups[0].Items[1].Title != "C" {
		t.Errorf("group X items out of declaration order: %+v", groups[0].Items)
	}
	if len(groups[1].Items) != 1 || groups[1].Items[0].Title != "B" {
		t.Errorf("group Y items = %+v, want [B]", groups[1].Items)
	}
}

func TestGroupByCategoryLossless(t *testing.T) {
	items := []ContentItem{
		{Title: "1", Category: "a"},
		{Title: "2", Category: "b"},
		{Title: "3", Category: "a"},
		{Title: "4", Category: "c"},
		{Title: "5", Category: "b"},
		{Title: "6", Category: "a"},
	}

	groups := GroupByCategory(items)

	total := 0
	seen := make(map[string]int)
	for _, g := range groups {
		for _, item := range g.Items {
			total++
			seen[item.Title]++
			if item.Category != g.Name {
				t.Errorf("item %s with category %s placed in group %s", item.Title, item.Category, g.Name)
			}
		}
	}

	if total != len(items) {
		t.Errorf("partition has %d items, want %d (lossless)", total, len(items))
	}
	for _, item := range items {
		if seen[item.Title] != 1 {
			t.Errorf("item %s appears %d times across groups, want exactly 1", item.Title, seen[item.Title])
		}
	}
}

func TestGroupByCategoryEmpty(t *testing.T) {
	if groups := GroupByCategory(nil); groups != nil {
		t.Errorf("GroupByCategory(nil) = %v, want nil", groups)
	}
	if groups := GroupByCategory([]ContentItem{}); groups != nil {
		t.Errorf("GroupByCategory(empty) = %v, want nil", groups)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple title",
			input: "Crafting a Dockerfile",
			want:  "crafting-a-dockerfile",
		},
		{
			name:  "punctuation collapses",
			input: "Go, Docker & You!",
			want:  "go-docker-you",
		},
		{
			name:  "filename stem",
			input: "2024_ml_pipeline",
			want:  "2024-ml-pipeline",
		},
		{
			name:  "surrounding whitespace",
			input: "  hello world  ",
			want:  "hello-world",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
