package schema_test

import (
	"reflect"
	"testing"

	"ddl-extract/internal/schema"
)

func TestMap_PutReplacesSameKey(t *testing.T) {
	m := schema.NewMap()
	if m.Put(&schema.Table{Schema: "public", Name: "a"}) {
		t.Error("first Put reported a replacement")
	}
	if !m.Put(&schema.Table{Name: "a", Columns: []schema.Column{{Name: "x", Type: "int"}}}) {
		t.Error("second Put with the default schema did not report a replacement")
	}

	tbl, ok := m.Get("public.a")
	if !ok || len(tbl.Columns) != 1 {
		t.Errorf("Get(public.a) = %+v, %v", tbl, ok)
	}
}

func TestMap_KeysSorted(t *testing.T) {
	m := schema.NewMap()
	for _, name := range []string{"zeta", "Alpha", "alpha", "beta"} {
		m.Put(&schema.Table{Schema: "public", Name: name})
	}
	m.Put(&schema.Table{Schema: "audit", Name: "zeta"})

	want := []string{"audit.zeta", "public.Alpha", "public.alpha", "public.beta", "public.zeta"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	for i, tbl := range m.Tables() {
		if tbl.Key() != want[i] {
			t.Errorf("Tables()[%d] = %s, want %s", i, tbl.Key(), want[i])
		}
	}
}

func TestMap_Filter(t *testing.T) {
	m := schema.NewMap()
	m.Put(&schema.Table{Schema: "public", Name: "users"})
	m.Put(&schema.Table{Schema: "auth", Name: "users"})
	m.Put(&schema.Table{Schema: "public", Name: "orders"})

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{"empty keeps all", nil, []string{"auth.users", "public.orders", "public.users"}},
		{"bare name matches every schema", []string{"USERS"}, []string{"auth.users", "public.users"}},
		{"qualified name", []string{"public.orders"}, []string{"public.orders"}},
		{"no match", []string{"missing"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Filter(tt.names).Keys(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%v) = %v, want %v", tt.names, got, tt.want)
			}
		})
	}
}
