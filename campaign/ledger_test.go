package campaign

import (
	"errors"
	"testing"
)

func TestLedgerIncreaseDecrease(t *testing.T) {
	id := 90001 // 只操作账本，不需要真实活动
	increasePledge(id, "x", 300)
	increasePledge(id, "y", 200)
	increasePledge(id, "x", 100)

	if GetPledge(id, "x") != 400 || GetPledge(id, "y") != 200 {
		t.Errorf("账本余额错误: x=%d y=%d", GetPledge(id, "x"), GetPledge(id, "y"))
	}
	if pledgeSum(id) != 600 {
		t.Errorf("账本之和错误: %d", pledgeSum(id))
	}

	if err := decreasePledge(id, "x", 400); err != nil {
		t.Fatalf("扣减失败: %v", err)
	}
	if GetPledge(id, "x") != 0 {
		t.Errorf("扣减后余额应为0")
	}
}

func TestLedgerUnderflow(t *testing.T) {
	id := 90002
	increasePledge(id, "x", 100)

	// 扣减超过余额必须立刻报错，不能静默截断
	if err := decreasePledge(id, "x", 101); !errors.Is(err, ErrInternalConsistency) {
		t.Errorf("账本下溢应失败于ErrInternalConsistency，实际: %v", err)
	}
	if GetPledge(id, "x") != 100 {
		t.Errorf("失败的扣减改变了余额")
	}
	// 未知条目同样不可扣减
	if err := decreasePledge(id, "nobody", 1); !errors.Is(err, ErrInternalConsistency) {
		t.Errorf("未知条目扣减应失败，实际: %v", err)
	}
}
