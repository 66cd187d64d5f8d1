package kuaidi100

import (
	"context"
	"encoding/json"
	expressQuery "github.com/go-tron/express-query"
	"github.com/go-tron/logger"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestKuaidi100(queryUrl string, autoNumberUrl string) *KuaiDi100 {
	return New(&KuaiDi100{
		QueryUrl:      queryUrl,
		AutoNumberUrl: autoNumberUrl,
		Logger:        logger.NewZap("kuaidi100", "info"),
	})
}

func TestKuaidi100_DetectCompany(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("num") != "YT1234567890" {
			t.Error("num 参数错误")
		}
		if r.URL.Query().Get("key") != "testkey" {
			t.Error("key 参数错误")
		}
		w.Write([]byte(`[{"comCode":"yuantong","id":"1","noCount":100,"noPre":"YT"},{"comCode":"yunda","id":"2","noCount":3,"noPre":"YT"}]`))
	}))
	defer server.Close()

	companies, err := newTestKuaidi100("", server.URL).DetectCompany(context.Background(), "YT1234567890", "testkey")
	if err != nil {
		t.Fatal(err)
	}
	if len(companies) != 2 {
		t.Fatal("候选数量错误", len(companies))
	}
	if companies[0].ComCode != "yuantong" {
		t.Fatal("首个候选错误", companies[0].ComCode)
	}
}

func TestKuaidi100_DetectCompanyFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"快递公司编码错误"}`))
	}))
	defer server.Close()

	companies, err := newTestKuaidi100("", server.URL).DetectCompany(context.Background(), "YT1234567890", "testkey")
	if err == nil {
		t.Fatal("错误信封必须返回失败")
	}
	if companies != nil {
		t.Fatal("失败时不能返回候选")
	}
	t.Log(err)
}

func TestKuaidi100_DetectCompanyUnexpected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>502 Bad Gateway</html>`))
	}))
	defer server.Close()

	_, err := newTestKuaidi100("", server.URL).DetectCompany(context.Background(), "YT1234567890", "testkey")
	if err == nil {
		t.Fatal("非JSON响应必须返回失败")
	}
	t.Log(err)
}

func TestKuaidi100_QueryPhone(t *testing.T) {
	var gotParam, gotCustomer, gotSign string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParam = r.PostFormValue("param")
		gotCustomer = r.PostFormValue("customer")
		gotSign = r.PostFormValue("sign")
		w.Write([]byte(`{"message":"ok","nu":"SF1234567890","ischeck":"0","com":"shunfeng","state":"0","data":[{"time":"2024-01-01 10:00:00","context":"运输中"}]}`))
	}))
	defer server.Close()

	c := newTestKuaidi100(server.URL, "")

	_, err := c.Query(context.Background(), &QueryReq{
		CompanyCode: CompanyShunfeng,
		Number:      "SF1234567890",
		Phone:       "13300001111",
		Customer:    "testcustomer",
		Key:         "testkey",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gotParam, `"phone":"13300001111"`) {
		t.Fatal("顺丰查询必须带手机号", gotParam)
	}
	if gotCustomer != "testcustomer" {
		t.Fatal("customer 参数错误", gotCustomer)
	}
	if gotSign != Sign(gotParam, "testkey", "testcustomer") {
		t.Fatal("签名错误", gotSign)
	}

	_, err = c.Query(context.Background(), &QueryReq{
		CompanyCode: "yuantong",
		Number:      "YT1234567890",
		Phone:       "13300001111",
		Customer:    "testcustomer",
		Key:         "testkey",
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(gotParam, "phone") {
		t.Fatal("非顺丰、丰网查询不能带手机号", gotParam)
	}
}

func TestKuaidi100_Normalize(t *testing.T) {
	body := `{"message":"ok","nu":"JD0076810060555","ischeck":"1","com":"jd","state":"3","data":[{"time":"2024-01-01 10:00:00","context":"您的快件已签收"},{"time":"2024-01-01 08:27:50","context":"您的快件正在派送中"}]}`
	var resp Response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatal(err)
	}

	res, err := Normalize(&resp)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != expressQuery.StatusDelivered {
		t.Fatal("状态错误", res.Status)
	}
	if res.Signed != 1 {
		t.Fatal("签收标记错误", res.Signed)
	}
	if len(res.Traces) != 2 {
		t.Fatal("轨迹数量错误", len(res.Traces))
	}
	if res.Traces[0].Info != "您的快件已签收" || res.Traces[1].Info != "您的快件正在派送中" {
		t.Fatal("轨迹必须保持上游顺序", res.Traces)
	}
	if res.LastTraceInfo != "您的快件已签收" {
		t.Fatal("最新轨迹错误", res.LastTraceInfo)
	}
	if res.LastTraceTime == nil {
		t.Fatal("最新轨迹时间缺失")
	}
	if res.CompanyName != "京东物流" {
		t.Fatal("公司名称错误", res.CompanyName)
	}
}

func TestKuaidi100_NormalizeFail(t *testing.T) {
	_, err := Normalize(&Response{ReturnCode: "408", Message: "查询无结果，请隔段时间再查"})
	if err == nil {
		t.Fatal("错误信封必须返回失败")
	}
	t.Log(err)
}

func TestKuaidi100_NormalizeState(t *testing.T) {
	_, err := Normalize(&Response{State: "99", Data: []Item{{Context: "运输中"}}})
	if err == nil {
		t.Fatal("未知状态码必须返回失败")
	}
	t.Log(err)
}

func TestKuaidi100_NormalizeNoTrace(t *testing.T) {
	_, err := Normalize(&Response{State: StateInTransit})
	if err == nil {
		t.Fatal("空轨迹必须返回失败")
	}
	t.Log(err)
}

func TestKuaidi100_ConvertCompanyCode(t *testing.T) {
	for code, expected := range map[string]string{
		"ZTO":  "zhongtong",
		"SF":   "shunfeng",
		"JDKD": "jd",
	} {
		company, ok := ConvertCompanyCode(code)
		if !ok || company != expected {
			t.Fatal("映射错误", code, company)
		}
	}
	if _, ok := ConvertCompanyCode("NOSUCH"); ok {
		t.Fatal("未知编码必须返回未命中")
	}
}
