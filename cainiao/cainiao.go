package cainiao

import (
	"context"
	"encoding/json"
	"github.com/go-resty/resty/v2"
	baseError "github.com/go-tron/base-error"
	"github.com/go-tron/config"
	expressQuery "github.com/go-tron/express-query"
	localTime "github.com/go-tron/local-time"
	"github.com/go-tron/logger"
	"net/http/cookiejar"
	"strings"
	"time"
)

var (
	ErrorParam        = baseError.SystemFactory("3021", "快递查询服务参数错误:{}")
	ErrorRequest      = baseError.SystemFactory("3022", "快递查询服务连接失败:{}")
	ErrorResponse     = baseError.SystemFactory("3023", "快递查询服务返回失败:{}")
	ErrorMissingToken = baseError.SystemFactory("3024", "响应缺少TOKEN")
	ErrorState        = baseError.SystemFactory("3025", "未知物流状态:{}")
)

const (
	StateCreate     = "CREATE"
	StateAccept     = "ACCEPT"
	StateGot        = "GOT"
	StateTransport  = "TRANSPORT"
	StateDelivering = "DELIVERING"
	StateSigned     = "SIGNED"
	StateAgentSign  = "AGENT_SIGN"
	StateFailed     = "FAILED"
	StateRejected   = "REJECTED"
	StateReturning  = "RETURNING"
)

var stateCode = map[string]string{
	StateCreate:     expressQuery.StatusAccepted,
	StateAccept:     expressQuery.StatusAccepted,
	StateGot:        expressQuery.StatusAccepted,
	StateTransport:  expressQuery.StatusInTransit,
	StateDelivering: expressQuery.StatusDelivering,
	StateSigned:     expressQuery.StatusDelivered,
	StateAgentSign:  expressQuery.StatusDelivered,
	StateFailed:     expressQuery.StatusException,
	StateRejected:   expressQuery.StatusRefused,
	StateReturning:  expressQuery.StatusReturned,
}

const (
	defaultTokenUrl   = "https://cn.app.cainiao.com/api/h5/token.json"
	defaultDetailsUrl = "https://cn.app.cainiao.com/api/h5/logisticsdetail.json"
	requestTimeout    = 10 * time.Second
)

func NewWithConfig(c *config.Config) *CaiNiao {
	return New(&CaiNiao{
		TokenUrl:   c.GetString("cainiao.tokenUrl"),
		DetailsUrl: c.GetString("cainiao.detailsUrl"),
		Logger:     logger.NewZapWithConfig(c, "cainiao", "error"),
	})
}

func New(c *CaiNiao) *CaiNiao {
	if c == nil {
		panic("config 必须设置")
	}
	if c.Logger == nil {
		panic("Logger 必须设置")
	}
	if c.TokenUrl == "" {
		c.TokenUrl = defaultTokenUrl
	}
	if c.DetailsUrl == "" {
		c.DetailsUrl = defaultDetailsUrl
	}
	return c
}

type CaiNiao struct {
	TokenUrl   string
	DetailsUrl string
	Logger     logger.Logger
}

type TraceDetail struct {
	Time *localTime.Time `json:"time"`
	Desc string          `json:"desc"`
}

type ExpressDetailsResult struct {
	MailNo          string        `json:"mailNo"`
	LogisticsStatus string        `json:"logisticsStatus"`
	StatusDesc      string        `json:"statusDesc"`
	CompanyName     string        `json:"companyName"`
	CompanyCode     string        `json:"companyCode"`
	FullTraceDetail []TraceDetail `json:"fullTraceDetail"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type detailsResponse struct {
	Data struct {
		Results []ExpressDetailsResult `json:"results"`
	} `json:"data"`
}

// Query 先取会话TOKEN再查询。真实TOKEN是下划线前的部分，后缀是上游内部
// 数据要丢弃。两次调用共用一个cookie罐，生命周期只有这一次查询。
// 结果列表为空返回nil：上游暂无数据，不算错误。
func (c *CaiNiao) Query(ctx context.Context, number string) (result *ExpressDetailsResult, err error) {

	var resBody = ""
	defer func() {
		c.Logger.Info("",
			c.Logger.Field("number", number),
			c.Logger.Field("error", err),
			c.Logger.Field("response", resBody),
		)
	}()

	if number == "" {
		return nil, ErrorParam("number")
	}

	c.Logger.Info("开始请求",
		c.Logger.Field("number", number),
	)

	jar, _ := cookiejar.New(nil)
	client := resty.New().SetCookieJar(jar).SetTimeout(requestTimeout)

	tokenRes, err := client.R().SetContext(ctx).Get(c.TokenUrl)
	if err != nil {
		return nil, ErrorRequest(err)
	}
	var tr tokenResponse
	if err := json.Unmarshal(tokenRes.Body(), &tr); err != nil {
		return nil, ErrorResponse(err)
	}
	if tr.Token == "" {
		return nil, ErrorMissingToken()
	}
	token := strings.Split(tr.Token, "_")[0]

	request := client.R()
	request = request.SetContext(ctx)
	request = request.SetFormData(map[string]string{
		"mailNo": number,
		"token":  token,
	})
	response, err := request.Post(c.DetailsUrl)
	if err != nil {
		return nil, ErrorRequest(err)
	}
	resBody = response.String()
	var resp detailsResponse
	if err := json.Unmarshal(response.Body(), &resp); err != nil {
		return nil, ErrorResponse(err)
	}

	if len(resp.Data.Results) == 0 {
		return nil, nil
	}
	return &resp.Data.Results[0], nil
}

func Normalize(result *ExpressDetailsResult) (*expressQuery.QueryRes, error) {
	status, ok := stateCode[result.LogisticsStatus]
	if !ok {
		return nil, ErrorState(result.LogisticsStatus)
	}

	signed := 0
	if status == expressQuery.StatusDelivered {
		signed = 1
	}

	var lastTraceInfo = ""
	var lastTraceTime *localTime.Time
	if len(result.FullTraceDetail) > 0 {
		lastTraceInfo = result.FullTraceDetail[0].Desc
		lastTraceTime = result.FullTraceDetail[0].Time
	}

	var traces = make([]expressQuery.Trace, 0)
	for _, v := range result.FullTraceDetail {
		traces = append(traces, expressQuery.Trace{
			Time: v.Time,
			Info: v.Desc,
		})
	}

	return &expressQuery.QueryRes{
		Number:        result.MailNo,
		Signed:        signed,
		Status:        status,
		LastTraceInfo: lastTraceInfo,
		LastTraceTime: lastTraceTime,
		Traces:        traces,
		CompanyName:   result.CompanyName,
		CompanyCode:   result.CompanyCode,
	}, nil
}
