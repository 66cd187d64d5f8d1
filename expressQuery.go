package expressQuery

import (
	"context"
	localTime "github.com/go-tron/local-time"
)

// 统一物流状态
const (
	StatusAccepted   = "accepted"
	StatusInTransit  = "inTransit"
	StatusDelivering = "delivering"
	StatusDelivered  = "delivered"
	StatusException  = "exception"
	StatusReturned   = "returned"
	StatusRefused    = "refused"
	StatusCanceled   = "canceled"
	StatusTransfer   = "transfer"
	StatusClearance  = "clearance"
	StatusInProgress = "inProgress"
)

type Credential struct {
	Customer string `json:"customer" validate:"required"`
	Key      string `json:"key" validate:"required"`
}

type QueryReq struct {
	CompanyCode string     `json:"companyCode" validate:"required"`
	Number      string     `json:"number" validate:"required"`
	Phone       string     `json:"phone"`
	Credential  Credential `json:"credential"`
}

type Trace struct {
	Time *localTime.Time `json:"time"`
	Info string          `json:"info"`
}

type QueryRes struct {
	Number        string          `json:"number"`
	Signed        int             `json:"signed"`
	Status        string          `json:"status"`
	LastTraceInfo string          `json:"lastTraceInfo"`
	LastTraceTime *localTime.Time `json:"lastTraceTime"`
	Traces        []Trace         `json:"traces"`
	CompanyName   string          `json:"companyName"`
	CompanyCode   string          `json:"companyCode"`
}

type ExpressQuery interface {
	Query(context.Context, *QueryReq) (*QueryRes, error)
}
