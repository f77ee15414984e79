package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, "操作成功", gin.H{"id": 1})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("应返回200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp["success"] != true || resp["message"] != "操作成功" {
		t.Errorf("响应信封不正确: %v", resp)
	}
	if resp["data"] == nil {
		t.Error("data字段丢失")
	}
}

func TestCreatedStatus(t *testing.T) {
	w := record(func(c *gin.Context) {
		Created(c, "created", nil)
	})
	if w.Code != http.StatusCreated {
		t.Errorf("应返回201, got %d", w.Code)
	}
}

func TestErrorEnvelopeAlwaysHasDetails(t *testing.T) {
	w := record(func(c *gin.Context) {
		BadRequest(c, "参数错误")
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("应返回400, got %d", w.Code)
	}

	var resp struct {
		Success bool     `json:"success"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Success {
		t.Error("错误响应success应为false")
	}
	if resp.Details == nil {
		t.Error("details应为空数组而非null")
	}
}

func TestErrorWithDetails(t *testing.T) {
	w := record(func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusBadRequest, "参数错误", []string{"name不能为空"})
	})

	var resp struct {
		Details []string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if len(resp.Details) != 1 || resp.Details[0] != "name不能为空" {
		t.Errorf("details不正确: %v", resp.Details)
	}
}
