package meta

// 事件类型
const (
	EventCreated   = "Created"   //活动创建
	EventPledged   = "Pledged"   //认捐
	EventUnpledged = "Unpledged" //撤回认捐（含退款逐人返还）
	EventClaim     = "Claim"     //发起人提取全部认捐
	EventCancel    = "Cancel"    //活动注销
	EventRefund    = "Refund"    //管理员全量退款（汇总）
)

// 领域事件，每次成功的状态变更恰好记录一次，失败的操作不产生事件
type Event struct {
	Type       string `json:"type"`
	CampaignId int    `json:"campaign_id"`
	Address    string `json:"address"` //相关账户（发起人或捐赠人）
	Amount     int    `json:"amount"`
	StartTime  int64  `json:"start_time,omitempty"` //仅Created事件携带
	EndTime    int64  `json:"end_time,omitempty"`   //仅Created事件携带
	Timestamp  string `json:"timestamp"`
}
