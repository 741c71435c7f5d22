package campaign

import (
	"errors"
	"fmt"
)

// 错误类别。任何前置条件不满足或外部转账失败都会中止整个操作，
// 不产生任何状态变更，也不记录事件
var (
	ErrInvalidWindow       = errors.New("时间窗口不合法")
	ErrInvalidCreator      = errors.New("发起人地址不能为空")
	ErrInvalidGoal         = errors.New("目标金额必须为正")
	ErrInvalidAmount       = errors.New("金额必须为正")
	ErrInsufficientFunds   = errors.New("认捐余额不足")
	ErrTransferFailed      = errors.New("资产转移失败")
	ErrNotAuthorized       = errors.New("没有操作权限")
	ErrAlreadyClaimed      = errors.New("众筹已被发起人提取")
	ErrFundsStillPledged   = errors.New("仍有认捐资金，无法注销")
	ErrInternalConsistency = errors.New("内部状态不一致")
	ErrCampaignNotFound    = errors.New("众筹活动不存在或已注销")
)

// 活动不可认捐的具体原因
const (
	NotStarted  = "NotStarted"  //尚未开始
	Ended       = "Ended"       //已结束
	GoalReached = "GoalReached" //已达到目标金额
	Disabled    = "Disabled"    //被管理员急停
)

// 活动不处于可认捐状态
type NotActiveError struct {
	CampaignId int
	Reason     string
}

func (e *NotActiveError) Error() string {
	return fmt.Sprintf("活动 %d 不可操作: %s", e.CampaignId, e.Reason)
}

// 判断err是否为指定原因的NotActiveError
func IsNotActive(err error, reason string) bool {
	var e *NotActiveError
	if errors.As(err, &e) {
		return e.Reason == reason
	}
	return false
}
