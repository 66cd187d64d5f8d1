package cainiao

import (
	"context"
	expressQuery "github.com/go-tron/express-query"
	"github.com/go-tron/logger"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestCaiNiao(tokenUrl string, detailsUrl string) *CaiNiao {
	return New(&CaiNiao{
		TokenUrl:   tokenUrl,
		DetailsUrl: detailsUrl,
		Logger:     logger.NewZap("cainiao", "info"),
	})
}

func TestCaiNiao_Query(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "cna", Value: "session"})
		w.Write([]byte(`{"token":"abcxyz_suffix123"}`))
	})
	mux.HandleFunc("/detail", func(w http.ResponseWriter, r *http.Request) {
		if r.PostFormValue("token") != "abcxyz" {
			t.Error("TOKEN必须取下划线前的部分", r.PostFormValue("token"))
		}
		if r.PostFormValue("mailNo") != "LP00123456789" {
			t.Error("mailNo 参数错误", r.PostFormValue("mailNo"))
		}
		if _, err := r.Cookie("cna"); err != nil {
			t.Error("两次调用必须共用cookie")
		}
		w.Write([]byte(`{"data":{"results":[{"mailNo":"LP00123456789","logisticsStatus":"SIGNED","statusDesc":"已签收","companyName":"中通快递","companyCode":"ZTO","fullTraceDetail":[{"time":"2024-01-01 10:00:00","desc":"快件已签收"},{"time":"2024-01-01 08:00:00","desc":"快件派送中"}]}]}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result, err := newTestCaiNiao(server.URL+"/token", server.URL+"/detail").Query(context.Background(), "LP00123456789")
	if err != nil {
		t.Fatal(err)
	}
	if result == nil {
		t.Fatal("缺少查询结果")
	}
	if result.LogisticsStatus != StateSigned {
		t.Fatal("状态错误", result.LogisticsStatus)
	}
	if len(result.FullTraceDetail) != 2 {
		t.Fatal("轨迹数量错误", len(result.FullTraceDetail))
	}
}

func TestCaiNiao_QueryMissingToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/detail", func(w http.ResponseWriter, r *http.Request) {
		t.Error("缺少TOKEN时不能继续查询")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := newTestCaiNiao(server.URL+"/token", server.URL+"/detail").Query(context.Background(), "LP00123456789")
	if err == nil {
		t.Fatal("缺少TOKEN必须返回失败")
	}
	t.Log(err)
}

func TestCaiNiao_QueryNoResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"abcxyz_suffix123"}`))
	})
	mux.HandleFunc("/detail", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"results":[]}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result, err := newTestCaiNiao(server.URL+"/token", server.URL+"/detail").Query(context.Background(), "LP00123456789")
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Fatal("空结果集必须返回nil", result)
	}
}

func TestCaiNiao_Normalize(t *testing.T) {
	res, err := Normalize(&ExpressDetailsResult{
		MailNo:          "LP00123456789",
		LogisticsStatus: StateSigned,
		CompanyName:     "中通快递",
		CompanyCode:     "ZTO",
		FullTraceDetail: []TraceDetail{
			{Desc: "快件已签收"},
			{Desc: "快件派送中"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != expressQuery.StatusDelivered {
		t.Fatal("状态错误", res.Status)
	}
	if res.Signed != 1 {
		t.Fatal("签收标记错误", res.Signed)
	}
	if res.Traces[0].Info != "快件已签收" || res.Traces[1].Info != "快件派送中" {
		t.Fatal("轨迹必须保持上游顺序", res.Traces)
	}
	if res.LastTraceInfo != "快件已签收" {
		t.Fatal("最新轨迹错误", res.LastTraceInfo)
	}
	if res.CompanyName != "中通快递" {
		t.Fatal("公司名称错误", res.CompanyName)
	}
}

func TestCaiNiao_NormalizeState(t *testing.T) {
	_, err := Normalize(&ExpressDetailsResult{LogisticsStatus: "WAREHOUSE"})
	if err == nil {
		t.Fatal("未知状态码必须返回失败")
	}
	t.Log(err)
}
