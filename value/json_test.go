package value

import "testing"

func TestFromJSON(t *testing.T) {
	tests := []struct {
		in   string
		want any
		err  bool
	}{
		{`null`, nil, false},
		{`12`, int64(12), false},
		{`1.5`, 1.5, false},
		{`1e3`, 1000.0, false},
		{`"s"`, "s", false},
		{`[1, [true]]`, []any{int64(1), []any{true}}, false},
		{`{"b": 1, "a": {}}`, MapOf("b", int64(1), "a", NewMap()), false},
		{`{"a": 1} 2`, nil, true},
		{`{"a": `, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FromJSON([]byte(tt.in))
			if tt.err {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}
