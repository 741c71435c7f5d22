package campaign

import (
	"errors"
	"testing"
	"time"

	"github.com/crowdfundV2/account"
	"github.com/crowdfundV2/common"
	"github.com/crowdfundV2/event"
	"github.com/crowdfundV2/global"
	"github.com/crowdfundV2/levelDB"
	"github.com/crowdfundV2/meta"
)

// 退款中途转账失败时遇错即止：放弃全部变更，回退到最近一次落盘状态，
// 且不记录任何事件。回退要从真实快照恢复，因此本用例带着临时库运行
func TestRefundAbortsOnTransferFailure(t *testing.T) {
	levelDB.InitDB(t.TempDir() + "/db")
	t.Cleanup(levelDB.CloseDB)

	global.AdminAddr = "admin"
	account.CreateAccount("admin", "", 0)
	account.CreateAccount("creator", "", 0)
	account.CreateAccount("donorA", "", 0)
	account.CreateAccount("donorB", "", 0)
	// 托管余额600，账本却记着600+500：刚好覆盖Pledged的前置校验能通过，
	// 退完donorA后向donorB转账必然失败
	account.CreateAccount(common.CustodyAccountAddress, "", 600)

	now := time.Now().Unix()
	registry = append(registry, meta.Campaign{
		Id:         len(registry) + 1,
		Creator:    "creator",
		Goal:       10000,
		Pledged:    600,
		StartTime:  now - 100,
		EndTime:    now + 3600,
		Donors:     []string{"donorA", "donorB"},
		CanOperate: true,
	})
	id := len(registry)
	increasePledge(id, "donorA", 600)
	increasePledge(id, "donorB", 500)
	if err := commitState(); err != nil {
		t.Fatalf("落盘失败: %v", err)
	}
	event.Events = nil

	if err := RefundAll(id, "admin"); !errors.Is(err, ErrInternalConsistency) {
		t.Fatalf("中途转账失败应映射为ErrInternalConsistency，实际: %v", err)
	}

	// donorA已到手的600被整体放弃，托管余额回到落盘时的状态
	if got := account.GetAccount(common.CustodyAccountAddress).Balance; got != 600 {
		t.Errorf("中止后托管余额未恢复: %d", got)
	}
	if got := account.GetAccount("donorA").Balance; got != 0 {
		t.Errorf("中止后donorA余额未恢复: %d", got)
	}
	if GetPledge(id, "donorA") != 600 || GetPledge(id, "donorB") != 500 {
		t.Errorf("中止后账本未恢复: A=%d B=%d", GetPledge(id, "donorA"), GetPledge(id, "donorB"))
	}
	c, err := Get(id)
	if err != nil {
		t.Fatalf("中止后活动读取失败: %v", err)
	}
	if c.Pledged != 600 {
		t.Errorf("中止后认捐总额未恢复: %d", c.Pledged)
	}
	// 中止的操作不产生任何事件
	if evs := event.GetByCampaign(id); len(evs) != 0 {
		t.Errorf("中止的退款记录了事件: %v", evs)
	}
}
