package types

import "testing"

func TestListEmojiRequest_WithDefaults_Zero(t *testing.T) {
	r := ListEmojiRequest{}.WithDefaults()
	if r.Queries == nil || len(r.Queries) != 0 {
		t.Fatalf("expected empty non-nil queries, got %#v", r.Queries)
	}
	if r.SortBy != SortByCreated || r.SortDir != SortDesc {
		t.Fatalf("unexpected sort defaults: %s %s", r.SortBy, r.SortDir)
	}
	if r.Page != 1 || r.Count != 100 {
		t.Fatalf("unexpected paging defaults: page=%d count=%d", r.Page, r.Count)
	}
}

func TestListEmojiRequest_WithDefaults_PreservesExplicit(t *testing.T) {
	r := ListEmojiRequest{
		Queries: []string{"cat"},
		SortBy:  SortByName,
		SortDir: SortAsc,
		Page:    7,
		Count:   10,
	}.WithDefaults()
	if len(r.Queries) != 1 || r.SortBy != SortByName || r.SortDir != SortAsc || r.Page != 7 || r.Count != 10 {
		t.Fatalf("explicit values were not preserved: %+v", r)
	}
}

func TestListEmojiRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     ListEmojiRequest
		wantErr bool
	}{
		{"defaults", ListEmojiRequest{}.WithDefaults(), false},
		{"bad sort key", ListEmojiRequest{SortBy: "popularity"}.WithDefaults(), true},
		{"bad sort dir", ListEmojiRequest{SortDir: "sideways"}.WithDefaults(), true},
		{"negative page", ListEmojiRequest{Page: -1}.WithDefaults(), true},
		{"negative count", ListEmojiRequest{Count: -5}.WithDefaults(), true},
	}
	for _, tc := range cases {
		if err := tc.req.Validate(); (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
