package campaign

import (
	"encoding/json"

	"github.com/cloudflare/cfssl/log"
)

/* 认捐账本
 * key: (活动id, 捐赠人地址) - val: 已认捐且未撤回的金额
 * 条目在首次认捐时隐式创建，之后只会被清零，不会被删除
 * 余额永不为负：减到负数说明不变量被破坏，立刻报错而不是静默截断
 */

var ledger map[int]map[string]int

func init() {
	ledger = map[int]map[string]int{}
}

// 查询捐赠人在某活动中的认捐余额
func GetPledge(id int, donor string) int {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return pledgeOf(id, donor)
}

// 不加锁的内部版本，引擎在持有写锁时使用
func pledgeOf(id int, donor string) int {
	return ledger[id][donor]
}

func increasePledge(id int, donor string, amount int) {
	if ledger[id] == nil {
		ledger[id] = map[string]int{}
	}
	ledger[id][donor] += amount
}

func decreasePledge(id int, donor string, amount int) error {
	if ledger[id][donor] < amount {
		log.Errorf("[decreasePledge] 活动 %d 捐赠人 %s 余额 %d 不足以扣减 %d，不变量被破坏",
			id, donor, ledger[id][donor], amount)
		return ErrInternalConsistency
	}
	ledger[id][donor] -= amount
	return nil
}

// 某活动全部认捐余额之和（应始终等于Campaign.Pledged）
func pledgeSum(id int) int {
	sum := 0
	for _, v := range ledger[id] {
		sum += v
	}
	return sum
}

// 序列化账本，供批量提交使用
func ledgerSnapshot() []byte {
	bytes, err := json.Marshal(ledger)
	if err != nil {
		log.Error("[ledgerSnapshot] marshal err:", err)
	}
	return bytes
}
