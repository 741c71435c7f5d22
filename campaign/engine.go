package campaign

import (
	"sync"
	"time"

	"github.com/cloudflare/cfssl/log"

	"github.com/crowdfundV2/account"
	"github.com/crowdfundV2/common"
	"github.com/crowdfundV2/event"
	"github.com/crowdfundV2/levelDB"
	"github.com/crowdfundV2/meta"
	"github.com/crowdfundV2/util"
)

/* 活动生命周期引擎
 * 所有对注册表、账本和托管资金的变更都经过这里：
 *   前置校验 -> 托管转账 -> 内存状态变更 -> 批量落盘 -> 记录事件
 * 任何一步失败则整个操作中止，不留下部分变更
 * 注册表、账本、账户和提交快照是跨活动共享的状态，因此所有操作
 * 通过引擎级写锁整体串行化（与宿主账本一次只处理一个操作的模型一致），
 * 锁覆盖托管转账与落盘提交而不仅是记账；查询走读锁
 */

var stateMu sync.RWMutex

// 活动是否处于可认捐状态（时间窗口内、目标未达成、未被急停）
// 只有pledge和unpledge使用该检查
func checkActive(c meta.Campaign) error {
	now := time.Now().Unix()
	switch {
	case !c.CanOperate:
		return &NotActiveError{CampaignId: c.Id, Reason: Disabled}
	case now < c.StartTime:
		return &NotActiveError{CampaignId: c.Id, Reason: NotStarted}
	case now > c.EndTime:
		return &NotActiveError{CampaignId: c.Id, Reason: Ended}
	case c.Pledged >= c.Goal:
		return &NotActiveError{CampaignId: c.Id, Reason: GoalReached}
	}
	return nil
}

// 创建众筹活动，返回分配的活动id。Created事件携带实际分配的id
func CreateCampaign(creator string, goal int, start, end int64) (int, error) {
	stateMu.Lock()
	defer stateMu.Unlock()

	id, err := create(creator, goal, start, end)
	if err != nil {
		return 0, err
	}
	if err := commitState(); err != nil {
		return 0, err
	}
	event.Record(meta.Event{
		Type:       meta.EventCreated,
		CampaignId: id,
		Address:    creator,
		Amount:     goal,
		StartTime:  start,
		EndTime:    end,
	})
	log.Infof("[campaign] 活动 %d 创建成功，发起人 %s，目标 %d", id, creator, goal)
	return id, nil
}

// 认捐：捐赠人向托管账户转入amount并记入账本
func Pledge(id int, donor string, amount int) error {
	stateMu.Lock()
	defer stateMu.Unlock()

	c, err := get(id)
	if err != nil {
		return err
	}
	if err := checkActive(c); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if err := account.Transfer(donor, common.CustodyAccountAddress, amount); err != nil {
		log.Errorf("[Pledge] 活动 %d 捐赠人 %s 转账失败: %v", id, donor, err)
		return ErrTransferFailed
	}
	// 首次持有非零余额时加入捐赠人名单（重复认捐不会重复加入）
	if pledgeOf(id, donor) == 0 && !util.Contains(c.Donors, donor) {
		c.Donors = append(c.Donors, donor)
	}
	c.Pledged += amount
	increasePledge(id, donor, amount)
	setCampaign(c)
	if err := commitState(); err != nil {
		return err
	}
	event.Record(meta.Event{Type: meta.EventPledged, CampaignId: id, Address: donor, Amount: amount})
	return nil
}

// 撤回认捐：托管账户向捐赠人退回amount
// 注意：可认捐检查要求Pledged < Goal，因此目标达成后即使仍在时间窗口内
// 也无法撤回，这是有意保留的设计
func Unpledge(id int, donor string, amount int) error {
	stateMu.Lock()
	defer stateMu.Unlock()

	c, err := get(id)
	if err != nil {
		return err
	}
	if err := checkActive(c); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > pledgeOf(id, donor) {
		return ErrInsufficientFunds
	}
	if err := account.Transfer(common.CustodyAccountAddress, donor, amount); err != nil {
		log.Errorf("[Unpledge] 活动 %d 向捐赠人 %s 退回失败: %v", id, donor, err)
		return ErrTransferFailed
	}
	if err := decreasePledge(id, donor, amount); err != nil {
		rollback()
		return err
	}
	c.Pledged -= amount
	setCampaign(c)
	if err := commitState(); err != nil {
		return err
	}
	event.Record(meta.Event{Type: meta.EventUnpledged, CampaignId: id, Address: donor, Amount: amount})
	return nil
}

// 发起人一次性提取全部认捐并终结活动。不要求目标已达成——
// 发起人可以随时提前结束活动并取走当前认捐总额
func ClaimAllAndEnd(id int, caller string) error {
	stateMu.Lock()
	defer stateMu.Unlock()

	c, err := get(id)
	if err != nil {
		return err
	}
	if caller != c.Creator {
		return ErrNotAuthorized
	}
	if c.Claimed {
		return ErrAlreadyClaimed
	}
	if !c.CanOperate {
		return &NotActiveError{CampaignId: id, Reason: Disabled}
	}
	amount := c.Pledged
	if err := account.Transfer(common.CustodyAccountAddress, caller, amount); err != nil {
		log.Errorf("[ClaimAllAndEnd] 活动 %d 提取失败: %v", id, err)
		return ErrTransferFailed
	}
	// 提取后活动终结：claimed不可逆，同时关闭操作开关
	c.Claimed = true
	c.CanOperate = false
	setCampaign(c)
	if err := commitState(); err != nil {
		return err
	}
	event.Record(meta.Event{Type: meta.EventClaim, CampaignId: id, Address: caller, Amount: amount})
	log.Infof("[campaign] 活动 %d 已被发起人提取 %d", id, amount)
	return nil
}

// 管理员急停开关：翻转CanOperate，不转移任何资金
// 不受时间窗口限制，提取后也可使用
func ToggleCanOperate(id int, caller string) error {
	if !IsAdministrator(caller) {
		return ErrNotAuthorized
	}
	stateMu.Lock()
	defer stateMu.Unlock()

	c, err := get(id)
	if err != nil {
		return err
	}
	c.CanOperate = !c.CanOperate
	setCampaign(c)
	if err := commitState(); err != nil {
		return err
	}
	log.Infof("[campaign] 活动 %d 急停开关翻转为 %v", id, c.CanOperate)
	return nil
}

// 注销活动：清空槽位，id永久退役
// 只有已提取或认捐总额为0的活动可以注销，避免托管资金被遗弃
func Cancel(id int, caller string) error {
	stateMu.Lock()
	defer stateMu.Unlock()

	c, err := get(id)
	if err != nil {
		return err
	}
	if caller != c.Creator && !IsAdministrator(caller) {
		return ErrNotAuthorized
	}
	if !c.Claimed && c.Pledged > 0 {
		return ErrFundsStillPledged
	}
	clear(id)
	if err := commitState(); err != nil {
		return err
	}
	event.Record(meta.Event{Type: meta.EventCancel, CampaignId: id, Address: caller})
	log.Infof("[campaign] 活动 %d 已注销", id)
	return nil
}

// 管理员全量退款：按捐赠人名单顺序逐一退回当前认捐余额
// 策略为遇错即止：退款前已校验托管余额能覆盖认捐总额，
// 中途转账失败只可能是不变量被破坏，此时放弃全部变更并回退内存状态
func RefundAll(id int, caller string) error {
	if !IsAdministrator(caller) {
		return ErrNotAuthorized
	}
	stateMu.Lock()
	defer stateMu.Unlock()

	c, err := get(id)
	if err != nil {
		return err
	}
	if c.Claimed {
		return ErrAlreadyClaimed
	}
	if account.GetAccount(common.CustodyAccountAddress).Balance < c.Pledged {
		log.Errorf("[RefundAll] 活动 %d 托管余额不足以覆盖认捐总额 %d", id, c.Pledged)
		return ErrInternalConsistency
	}

	type refunded struct {
		donor  string
		amount int
	}
	var records []refunded
	total := 0
	for _, donor := range c.Donors {
		balance := pledgeOf(id, donor) // 余额为0的捐赠人照常遍历，0金额转账是空操作
		if err := account.Transfer(common.CustodyAccountAddress, donor, balance); err != nil {
			log.Errorf("[RefundAll] 活动 %d 向捐赠人 %s 退回 %d 失败: %v", id, donor, balance, err)
			rollback()
			return ErrInternalConsistency
		}
		if balance > 0 {
			if err := decreasePledge(id, donor, balance); err != nil {
				rollback()
				return err
			}
			c.Pledged -= balance
			total += balance
		}
		records = append(records, refunded{donor: donor, amount: balance})
	}
	setCampaign(c)
	if err := commitState(); err != nil {
		return err
	}
	// 事件按名单顺序逐人记录，最后记录一条汇总
	for _, r := range records {
		event.Record(meta.Event{Type: meta.EventUnpledged, CampaignId: id, Address: r.donor, Amount: r.amount})
	}
	event.Record(meta.Event{Type: meta.EventRefund, CampaignId: id, Address: caller, Amount: total})
	log.Infof("[campaign] 活动 %d 全量退款完成，共退回 %d", id, total)
	return nil
}

// 提交点：注册表、账本、账户状态合并为一次批量写入
// 落盘失败时回退内存状态，保证内存与磁盘一致
func commitState() error {
	kvs := map[string][]byte{
		common.CampaignsKey: registrySnapshot(),
		common.LedgerKey:    ledgerSnapshot(),
		common.AccountsKey:  account.Snapshot(),
	}
	if err := levelDB.DBBatchPut(kvs); err != nil {
		rollback()
		return ErrInternalConsistency
	}
	return nil
}

// 回退到最近一次落盘的状态
func rollback() {
	log.Error("[campaign] 操作中途失败，回退到最近一次落盘状态")
	account.GetFromDisk()
	InitFromDisk()
}
