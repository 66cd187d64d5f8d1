package tracker

import (
	"context"
	expressQuery "github.com/go-tron/express-query"
	"github.com/go-tron/express-query/cainiao"
	"github.com/go-tron/express-query/kuaidi100"
	"github.com/go-tron/logger"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var testCredential = expressQuery.Credential{
	Customer: "testcustomer",
	Key:      "testkey",
}

func newTestTracker(server *httptest.Server) *Tracker {
	return New(&Tracker{
		KuaiDi100: kuaidi100.New(&kuaidi100.KuaiDi100{
			QueryUrl:      server.URL + "/query",
			AutoNumberUrl: server.URL + "/auto",
			Logger:        logger.NewZap("kuaidi100", "info"),
		}),
		CaiNiao: cainiao.New(&cainiao.CaiNiao{
			TokenUrl:   server.URL + "/token",
			DetailsUrl: server.URL + "/detail",
			Logger:     logger.NewZap("cainiao", "info"),
		}),
		Logger: logger.NewZap("tracker", "info"),
	})
}

func TestTracker_QueryResolved(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auto", func(w http.ResponseWriter, r *http.Request) {
		t.Error("映射命中时不能走单号识别")
	})
	mux.HandleFunc("/query", func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.PostFormValue("param"), `"com":"jd"`) {
			t.Error("公司编码映射错误", r.PostFormValue("param"))
		}
		w.Write([]byte(`{"message":"ok","nu":"JD0076810060555","ischeck":"1","com":"jd","state":"3","data":[{"time":"2024-01-01 10:00:00","context":"您的快件已签收"}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	res, err := newTestTracker(server).Query(context.Background(), &expressQuery.QueryReq{
		CompanyCode: "JDKD",
		Number:      "JD0076810060555",
		Credential:  testCredential,
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
	if len(res.Traces) != 1 || res.Traces[0].Info != "您的快件已签收" {
		t.Fatal("轨迹错误", res.Traces)
	}
	if res.CompanyName != "京东物流" {
		t.Fatal("公司名称错误", res.CompanyName)
	}
}

func TestTracker_QueryDetected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auto", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"comCode":"yuantong","id":"1","noCount":100,"noPre":"YT"}]`))
	})
	mux.HandleFunc("/query", func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.PostFormValue("param"), `"com":"yuantong"`) {
			t.Error("必须使用首个识别候选", r.PostFormValue("param"))
		}
		w.Write([]byte(`{"message":"ok","nu":"YT1234567890","ischeck":"0","com":"yuantong","state":"0","data":[{"time":"2024-01-01 10:00:00","context":"运输中"}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	res, err := newTestTracker(server).Query(context.Background(), &expressQuery.QueryReq{
		CompanyCode: "UNKNOWN_CARRIER",
		Number:      "YT1234567890",
		Credential:  testCredential,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != expressQuery.StatusInTransit {
		t.Fatal("状态错误", res.Status)
	}
}

func TestTracker_QueryFallbackCaiNiao(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auto", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"识别失败"}`))
	})
	mux.HandleFunc("/query", func(w http.ResponseWriter, r *http.Request) {
		t.Error("识别失败后不能再查快递100")
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"abcxyz_suffix123"}`))
	})
	mux.HandleFunc("/detail", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"results":[{"mailNo":"LP00123456789","logisticsStatus":"DELIVERING","statusDesc":"派送中","companyName":"中通快递","companyCode":"ZTO","fullTraceDetail":[{"time":"2024-01-01 10:00:00","desc":"快件派送中"}]}]}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	res, err := newTestTracker(server).Query(context.Background(), &expressQuery.QueryReq{
		CompanyCode: "UNKNOWN_CARRIER",
		Number:      "LP00123456789",
		Credential:  testCredential,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != expressQuery.StatusDelivering {
		t.Fatal("状态错误", res.Status)
	}
	if res.CompanyName != "中通快递" {
		t.Fatal("公司名称错误", res.CompanyName)
	}
}

func TestTracker_QueryFallbackMissingToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auto", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := newTestTracker(server).Query(context.Background(), &expressQuery.QueryReq{
		CompanyCode: "UNKNOWN_CARRIER",
		Number:      "LP00123456789",
		Credential:  testCredential,
	})
	if err == nil {
		t.Fatal("缺少TOKEN必须返回失败")
	}
	t.Log(err)
}

func TestTracker_QueryFallbackNoTrace(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auto", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"abcxyz_suffix123"}`))
	})
	mux.HandleFunc("/detail", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"results":[]}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := newTestTracker(server).Query(context.Background(), &expressQuery.QueryReq{
		CompanyCode: "UNKNOWN_CARRIER",
		Number:      "LP00123456789",
		Credential:  testCredential,
	})
	if err == nil {
		t.Fatal("空结果不能当成成功返回")
	}
	t.Log(err)
}

func TestTracker_QueryParam(t *testing.T) {
	server := httptest.NewServer(http.NewServeMux())
	defer server.Close()

	_, err := newTestTracker(server).Query(context.Background(), &expressQuery.QueryReq{
		CompanyCode: "ZTO",
		Number:      "75312345678901",
	})
	if err == nil {
		t.Fatal("缺少凭证必须返回失败")
	}
	t.Log(err)
}
