package tracker

import (
	"context"
	"github.com/go-playground/validator/v10"
	baseError "github.com/go-tron/base-error"
	"github.com/go-tron/config"
	expressQuery "github.com/go-tron/express-query"
	"github.com/go-tron/express-query/cainiao"
	"github.com/go-tron/express-query/kuaidi100"
	"github.com/go-tron/logger"
)

var (
	ErrorParam   = baseError.SystemFactory("3031", "快递查询参数错误:{}")
	ErrorNoTrace = baseError.Factory("3032", "暂无物流信息")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func NewWithConfig(c *config.Config) *Tracker {
	return New(&Tracker{
		KuaiDi100: kuaidi100.NewWithConfig(c),
		CaiNiao:   cainiao.NewWithConfig(c),
		Logger:    logger.NewZapWithConfig(c, "tracker", "error"),
	})
}

func New(c *Tracker) *Tracker {
	if c == nil {
		panic("config 必须设置")
	}
	if c.KuaiDi100 == nil {
		panic("KuaiDi100 必须设置")
	}
	if c.CaiNiao == nil {
		panic("CaiNiao 必须设置")
	}
	if c.Logger == nil {
		panic("Logger 必须设置")
	}
	return c
}

type Tracker struct {
	KuaiDi100 *kuaidi100.KuaiDi100
	CaiNiao   *cainiao.CaiNiao
	Logger    logger.Logger
}

// Query 一次查询只走一条路径，成功或不可恢复失败即终止，不做自动重试：
//  1. 静态映射命中 -> 直接查快递100
//  2. 映射缺失 -> 单号识别，取首个候选再查快递100
//  3. 识别失败或无候选 -> 退回菜鸟
func (t *Tracker) Query(ctx context.Context, req *expressQuery.QueryReq) (*expressQuery.QueryRes, error) {
	if err := validate.Struct(req); err != nil {
		return nil, ErrorParam(err)
	}

	companyCode, ok := kuaidi100.ConvertCompanyCode(req.CompanyCode)
	if !ok {
		companies, err := t.KuaiDi100.DetectCompany(ctx, req.Number, req.Credential.Key)
		if err != nil || len(companies) == 0 {
			t.Logger.Info("单号识别失败，转菜鸟查询",
				t.Logger.Field("number", req.Number),
				t.Logger.Field("companyCode", req.CompanyCode),
				t.Logger.Field("error", err),
			)
			return t.queryCaiNiao(ctx, req.Number)
		}
		companyCode = companies[0].ComCode
	}

	res, err := t.KuaiDi100.Query(ctx, &kuaidi100.QueryReq{
		CompanyCode: companyCode,
		Number:      req.Number,
		Phone:       req.Phone,
		Customer:    req.Credential.Customer,
		Key:         req.Credential.Key,
	})
	if err != nil {
		return nil, err
	}
	return kuaidi100.Normalize(res)
}

func (t *Tracker) queryCaiNiao(ctx context.Context, number string) (*expressQuery.QueryRes, error) {
	result, err := t.CaiNiao.Query(ctx, number)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrorNoTrace()
	}
	return cainiao.Normalize(result)
}
