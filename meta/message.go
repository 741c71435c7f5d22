package meta

// 用户提交创建众筹活动的参数
type PostCampaign struct {
	Creator   string `json:"creator"`
	Goal      int    `json:"goal"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
}

// 用户提交认捐/撤回认捐的参数
type PostPledge struct {
	CampaignId int    `json:"campaign_id"`
	Donor      string `json:"donor"`
	Amount     int    `json:"amount"`
}

// 提取/注销/退款/急停开关的参数
type PostSettle struct {
	CampaignId int    `json:"campaign_id"`
	Caller     string `json:"caller"`
}

type HttpResponse struct {
	Error string      `json:"error"` // 如果不为空代表错误信息
	Data  interface{} `json:"data"`
	Code  int         `json:"code"` // vue-element-admin的前端校验码，必须为20000
}
