package kuaidi100

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	baseError "github.com/go-tron/base-error"
	"github.com/go-tron/config"
	expressQuery "github.com/go-tron/express-query"
	localTime "github.com/go-tron/local-time"
	"github.com/go-tron/logger"
	"strings"
	"time"
)

var (
	ErrorParam    = baseError.SystemFactory("3011", "快递查询服务参数错误:{}")
	ErrorRequest  = baseError.SystemFactory("3012", "快递查询服务连接失败:{}")
	ErrorResponse = baseError.SystemFactory("3013", "快递查询服务返回失败:{}")
	ErrorFail     = baseError.Factory("3014")
	ErrorState    = baseError.SystemFactory("3015", "未知物流状态:{}")
	ErrorNoTrace  = baseError.Factory("3016", "暂无物流信息")
)

const (
	StateInTransit  = "0"
	StateAccepted   = "1"
	StateException  = "2"
	StateDelivered  = "3"
	StateCanceled   = "4"
	StateInProgress = "5"
	StateReturned   = "6"
	StateTransfer   = "7"
	StateClearance  = "8"
	StateRefused    = "14"
)

var stateCode = map[string]string{
	StateInTransit:  expressQuery.StatusInTransit,
	StateAccepted:   expressQuery.StatusAccepted,
	StateException:  expressQuery.StatusException,
	StateDelivered:  expressQuery.StatusDelivered,
	StateCanceled:   expressQuery.StatusCanceled,
	StateInProgress: expressQuery.StatusInProgress,
	StateReturned:   expressQuery.StatusReturned,
	StateTransfer:   expressQuery.StatusTransfer,
	StateClearance:  expressQuery.StatusClearance,
	StateRefused:    expressQuery.StatusRefused,
}

// 顺丰、丰网查询必须带手机号，其他公司带了会被上游拒绝
const (
	CompanyShunfeng = "shunfeng"
	CompanyFengwang = "fengwang"
)

const (
	defaultQueryUrl      = "https://poll.kuaidi100.com/poll/query.do"
	defaultAutoNumberUrl = "https://www.kuaidi100.com/autonumber/auto"
	requestTimeout       = 10 * time.Second
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func NewWithConfig(c *config.Config) *KuaiDi100 {
	return New(&KuaiDi100{
		QueryUrl:      c.GetString("kuaidi100.queryUrl"),
		AutoNumberUrl: c.GetString("kuaidi100.autoNumberUrl"),
		Logger:        logger.NewZapWithConfig(c, "kuaidi100", "error"),
	})
}

func New(c *KuaiDi100) *KuaiDi100 {
	if c == nil {
		panic("config 必须设置")
	}
	if c.Logger == nil {
		panic("Logger 必须设置")
	}
	if c.QueryUrl == "" {
		c.QueryUrl = defaultQueryUrl
	}
	if c.AutoNumberUrl == "" {
		c.AutoNumberUrl = defaultAutoNumberUrl
	}
	return c
}

type KuaiDi100 struct {
	QueryUrl      string
	AutoNumberUrl string
	Logger        logger.Logger
}

type Company struct {
	ComCode string `json:"comCode"`
	Id      string `json:"id"`
	NoCount int    `json:"noCount"`
	NoPre   string `json:"noPre"`
}

type QueryReq struct {
	CompanyCode string `json:"companyCode" validate:"required"`
	Number      string `json:"number" validate:"required"`
	Phone       string `json:"phone"`
	Customer    string `json:"customer" validate:"required"`
	Key         string `json:"key" validate:"required"`
}

type Item struct {
	Time    *localTime.Time `json:"time"`
	Context string          `json:"context"`
}

type Response struct {
	Message    string `json:"message"`
	ReturnCode string `json:"returnCode"`
	Result     bool   `json:"result"`
	Nu         string `json:"nu"`
	Ischeck    string `json:"ischeck"`
	Com        string `json:"com"`
	State      string `json:"state"`
	Data       []Item `json:"data"`
}

func Sign(param string, key string, customer string) string {
	hash := md5.New()
	hash.Write([]byte(param + key + customer))
	return strings.ToUpper(hex.EncodeToString(hash.Sum(nil)))
}

// DetectCompany 根据单号识别快递公司，候选按上游相关度排序。
// 上游接口不用HTTP状态码表示失败：成功返回JSON数组，失败返回带message的
// JSON对象，只能按响应首字符区分。
func (c *KuaiDi100) DetectCompany(ctx context.Context, number string, key string) (companies []Company, err error) {

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
	if key == "" {
		return nil, ErrorParam("key")
	}

	c.Logger.Info("开始请求",
		c.Logger.Field("number", number),
	)

	request := resty.New().SetTimeout(requestTimeout).R()
	request = request.SetContext(ctx)
	request = request.SetQueryParam("num", number)
	request = request.SetQueryParam("key", key)
	response, err := request.Get(c.AutoNumberUrl)
	if err != nil {
		return nil, ErrorRequest(err)
	}
	resBody = response.String()
	body := response.Body()
	if len(body) == 0 {
		return nil, ErrorResponse("空响应")
	}

	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, &companies); err != nil {
			return nil, ErrorResponse(err)
		}
		return companies, nil
	case '{':
		var res struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &res); err != nil {
			return nil, ErrorResponse(err)
		}
		var errorMsg = "请求失败"
		if res.Message != "" {
			errorMsg = res.Message
		}
		return nil, ErrorFail(errorMsg)
	default:
		return nil, ErrorResponse(resBody)
	}
}

func (c *KuaiDi100) Query(ctx context.Context, req *QueryReq) (res *Response, err error) {

	var resBody = ""
	defer func() {
		c.Logger.Info("",
			c.Logger.Field("number", req.Number),
			c.Logger.Field("error", err),
			c.Logger.Field("response", resBody),
		)
	}()

	if err := validate.Struct(req); err != nil {
		return nil, ErrorParam(err)
	}

	var data = map[string]interface{}{
		"com": req.CompanyCode,
		"num": req.Number,
	}
	if req.CompanyCode == CompanyShunfeng || req.CompanyCode == CompanyFengwang {
		data["phone"] = req.Phone
	}
	param, _ := json.Marshal(data)

	c.Logger.Info("开始请求",
		c.Logger.Field("number", req.Number),
	)

	client := resty.New().SetTimeout(requestTimeout)
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.FormData.Set("sign", Sign(r.FormData.Get("param"), req.Key, req.Customer))
		return nil
	})
	request := client.R()
	request = request.SetContext(ctx)
	request = request.SetFormData(map[string]string{
		"customer": req.Customer,
		"param":    string(param),
	})
	response, err := request.Post(c.QueryUrl)
	if err != nil {
		return nil, ErrorRequest(err)
	}
	resBody = response.String()
	var resp Response
	if err := json.Unmarshal(response.Body(), &resp); err != nil {
		return nil, ErrorResponse(err)
	}

	return &resp, nil
}

// Normalize 上游错误信封和未知状态码都必须显式失败，不能折算成空结果
func Normalize(res *Response) (*expressQuery.QueryRes, error) {
	if res.ReturnCode != "" {
		var errorMsg = "请求失败"
		if res.Message != "" {
			errorMsg = res.Message
		}
		return nil, ErrorFail(errorMsg)
	}

	status, ok := stateCode[res.State]
	if !ok {
		return nil, ErrorState(res.State)
	}

	if len(res.Data) == 0 {
		return nil, ErrorNoTrace()
	}

	signed := 0
	if res.Ischeck == "1" || res.State == StateDelivered {
		signed = 1
	}

	var traces = make([]expressQuery.Trace, 0)
	for _, v := range res.Data {
		traces = append(traces, expressQuery.Trace{
			Time: v.Time,
			Info: v.Context,
		})
	}

	return &expressQuery.QueryRes{
		Number:        res.Nu,
		Signed:        signed,
		Status:        status,
		LastTraceInfo: res.Data[0].Context,
		LastTraceTime: res.Data[0].Time,
		Traces:        traces,
		CompanyName:   CompanyCodes(res.Com),
		CompanyCode:   res.Com,
	}, nil
}
