package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParsePageParamsDefaults(t *testing.T) {
	params := ParsePageParams(testContext("/customers"))

	if params.Page != 1 {
		t.Errorf("expected default page 1, got %d", params.Page)
	}
	if params.PageSize != DefaultPageSize {
		t.Errorf("expected default page size %d, got %d", DefaultPageSize, params.PageSize)
	}
}

func TestParsePageParamsClampsPageSize(t *testing.T) {
	params := ParsePageParams(testContext("/customers?page_size=500"))

	if params.PageSize != MaxPageSize {
		t.Errorf("expected page size clamped to %d, got %d", MaxPageSize, params.PageSize)
	}
}

func TestParsePageParamsFloorsPage(t *testing.T) {
	params := ParsePageParams(testContext("/customers?page=0"))
	if params.Page != 1 {
		t.Errorf("expected page floored to 1, got %d", params.Page)
	}

	params = ParsePageParams(testContext("/customers?page=-3&page_size=-1"))
	if params.Page != 1 || params.PageSize != DefaultPageSize {
		t.Errorf("expected defaults for negative params, got page=%d size=%d", params.Page, params.PageSize)
	}
}

func TestParsePageParamsWithCustomSizeParam(t *testing.T) {
	params := ParsePageParamsWith(testContext("/components?per_page=5"), "per_page")

	if params.PageSize != 5 {
		t.Errorf("expected page size 5, got %d", params.PageSize)
	}
}

func TestPageParamsOffset(t *testing.T) {
	params := &PageParams{Page: 3, PageSize: 20}
	if params.GetOffset() != 40 {
		t.Errorf("expected offset 40, got %d", params.GetOffset())
	}
	if params.GetLimit() != 20 {
		t.Errorf("expected limit 20, got %d", params.GetLimit())
	}
}

func TestNewPageInfo(t *testing.T) {
	info := NewPageInfo(2, 20, 45)

	if info.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", info.TotalPages)
	}
	if !info.HasNext || !info.HasPrev {
		t.Errorf("expected has_next and has_prev for middle page")
	}
}
