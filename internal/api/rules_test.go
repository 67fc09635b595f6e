package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gnip/gnip-go/internal/types"
)

func TestDeleteRule_SendsRuleBody(t *testing.T) {
	t.Parallel()
	var method, path, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		xmlReply(http.StatusOK, "<result>Success</result>")(w, r)
	}))
	defer srv.Close()

	rule := types.Rule{Type: types.RuleActor, Value: "bob", Tag: "t1"}
	res, err := DeleteRule(context.Background(), newCaller(t, srv), twitter, types.FilterByName("f1"), rule)
	if err != nil || res == nil || res.Message != "Success" {
		t.Fatalf("DeleteRule unexpected: res=%+v err=%v", res, err)
	}
	if method != http.MethodDelete || path != "/my/twitter/filters/f1/rules" {
		t.Errorf("request = %s %s", method, path)
	}
	if !strings.Contains(body, `<rule type="actor">bob</rule>`) {
		t.Errorf("body = %s", body)
	}
}

func TestAddRules_EmptyBodyIsEmptyResult(t *testing.T) {
	t.Parallel()
	var method, path, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	rules := types.NewRules(types.NewRule(types.RuleTag, "go"), types.NewRule(types.RuleKeyword, "gopher"))
	res, err := AddRules(context.Background(), newCaller(t, srv), twitter, types.FilterByName("f1"), rules)
	if err != nil || res == nil || res.Message != "" {
		t.Fatalf("AddRules unexpected: res=%+v err=%v", res, err)
	}
	if method != http.MethodPost || path != "/my/twitter/filters/f1/rules" {
		t.Errorf("request = %s %s", method, path)
	}
	if !strings.Contains(body, "<rules>") || strings.Count(body, "<rule ") != 2 {
		t.Errorf("body = %s", body)
	}
}

func TestAddRule_Success(t *testing.T) {
	t.Parallel()
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if _, err := AddRule(context.Background(), newCaller(t, srv), twitter, types.FilterByName("f1"), types.NewRule(types.RuleTo, "alice")); err != nil {
		t.Fatalf("AddRule: %v", err)
	}
	if path != "/my/twitter/filters/f1/rules" {
		t.Errorf("path = %q", path)
	}
}
