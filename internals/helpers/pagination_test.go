package helper

import "testing"

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "users_created_at",
		"name":       "users_first_name",
	}

	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{name: "columna permitida asc", sortBy: "name", sortOrder: "asc", want: "ORDER BY users_first_name ASC"},
		{name: "columna permitida desc", sortBy: "created_at", sortOrder: "desc", want: "ORDER BY users_created_at DESC"},
		{name: "columna fuera de la lista cae al default", sortBy: "users_password; DROP TABLE users", sortOrder: "asc", want: "ORDER BY users_created_at ASC"},
		{name: "sin columna usa el default", sortBy: "", sortOrder: "desc", want: "ORDER BY users_created_at DESC"},
		{name: "dirección desconocida cae a DESC", sortBy: "name", sortOrder: "sideways", want: "ORDER BY users_first_name DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{SortBy: tt.sortBy, SortOrder: tt.sortOrder}
			got, err := p.SafeOrderClause(allowed, "created_at")
			if err != nil {
				t.Fatalf("SafeOrderClause devolvió error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SafeOrderClause = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSafeOrderClauseSinDefaultValido(t *testing.T) {
	p := Params{SortBy: "nope"}
	if _, err := p.SafeOrderClause(map[string]string{}, "created_at"); err == nil {
		t.Error("sin default en la whitelist debe devolver error")
	}
}

func TestBuildMeta(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "primera página con más resultados", total: 95, page: 1, perPage: 25, totalPages: 4, hasNext: true, hasPrev: false},
		{name: "página intermedia", total: 95, page: 3, perPage: 25, totalPages: 4, hasNext: true, hasPrev: true},
		{name: "última página", total: 95, page: 4, perPage: 25, totalPages: 4, hasNext: false, hasPrev: true},
		{name: "sin resultados", total: 0, page: 1, perPage: 25, totalPages: 0, hasNext: false, hasPrev: false},
		{name: "total exacto al tamaño de página", total: 50, page: 1, perPage: 25, totalPages: 2, hasNext: true, hasPrev: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := BuildMeta(tt.total, Params{Page: tt.page, PerPage: tt.perPage})
			if meta.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.totalPages)
			}
			if meta.HasNext != tt.hasNext || meta.HasPrev != tt.hasPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v", meta.HasNext, meta.HasPrev, tt.hasNext, tt.hasPrev)
			}
			if meta.HasNext && (meta.NextPage == nil || *meta.NextPage != tt.page+1) {
				t.Error("NextPage debe apuntar a la página siguiente")
			}
			if meta.HasPrev && (meta.PrevPage == nil || *meta.PrevPage != tt.page-1) {
				t.Error("PrevPage debe apuntar a la página anterior")
			}
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	if got := p.Offset(); got != 50 {
		t.Errorf("Offset() = %d, want 50", got)
	}
	if got := p.Limit(); got != 25 {
		t.Errorf("Limit() = %d, want 25", got)
	}
}
