package account

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/cloudflare/cfssl/log"

	"github.com/crowdfundV2/common"
	"github.com/crowdfundV2/levelDB"
	"github.com/crowdfundV2/meta"
)

/* 这里封装了所有的对账户的操作
 * 每个节点默认包含一个全局的State，所以这里直接将State设置为私有，
 * 不用显式地创建，直接在init()创建
 * 认捐资金由托管账户（common.CustodyAccountAddress）持有，
 * 活动引擎通过 Transfer 在捐赠人、托管账户、发起人之间转移资产
 */

var state State // 私有，通过函数进行操作

// 账户注册等入口可由客户端接口并发触达，账户表自带读写锁
var mu sync.RWMutex

type State struct {
	Accounts map[string]meta.Account // key: 账户地址 - val: 账户信息
}

func init() {
	state.Accounts = map[string]meta.Account{}
}

// 创建账户（已存在时覆盖重置，仅注册入口会调用）
func CreateAccount(address, publicKey string, balance int) meta.Account {
	account := meta.Account{
		Address:    address,
		Balance:    balance,
		PublicKey:  []byte(publicKey),
		PrivateKey: nil,
	}
	mu.Lock()
	state.Accounts[address] = account
	mu.Unlock()

	PutIntoDisk()
	return account
}

func SubBalance(sender string, amount int) meta.Account {
	mu.Lock()
	defer mu.Unlock()
	senderAccount := state.Accounts[sender]
	if senderAccount.Balance < amount { // 调用SubBalance前会先调用CanTransfer，理论上不会出现余额不足的情况
		log.Infof("[SubBalance]: Insufficient balance.")
	}
	senderAccount.Balance -= amount
	state.Accounts[sender] = senderAccount
	return senderAccount
}

func AddBalance(receiver string, amount int) meta.Account {
	mu.Lock()
	defer mu.Unlock()
	receiverAccount := state.Accounts[receiver]
	receiverAccount.Balance += amount
	state.Accounts[receiver] = receiverAccount
	return receiverAccount
}

// 判断转出方是否有足够余额
func CanTransfer(sender string, amount int) bool {
	mu.RLock()
	defer mu.RUnlock()
	senderAccount := state.Accounts[sender]
	if senderAccount.Balance < amount {
		log.Infof("[CanTransfer]: Insufficient balance.")
		return false
	}
	return true
}

// 由 from 向 to 账户转账。失败时不做任何变更，调用方据此中止整个操作。
// amount <= 0 视为成功的空操作（退款时允许对余额为0的捐赠人“转账”0）
func Transfer(from, to string, amount int) error {
	if amount <= 0 {
		return nil
	}
	if !ContainsAddress(from) || !ContainsAddress(to) {
		return errors.New("账户地址不存在，无法转账")
	}
	if !CanTransfer(from, amount) {
		return errors.New("账户余额不足，无法转账")
	}
	SubBalance(from, amount)
	AddBalance(to, amount)
	return nil
}

// 持久化。余额变更由活动引擎在提交点通过 Snapshot 统一批量落盘，
// 这里仅在账户创建等独立入口使用
func PutIntoDisk() {
	mu.RLock()
	bytes, err := json.Marshal(state.Accounts)
	mu.RUnlock()
	if err != nil {
		log.Error("[PutIntoDisk] marshal accounts err:", err)
		return
	}
	levelDB.DBPut(common.AccountsKey, bytes)
}

// 序列化当前账户状态，供批量提交使用
func Snapshot() []byte {
	mu.RLock()
	defer mu.RUnlock()
	bytes, err := json.Marshal(state.Accounts)
	if err != nil {
		log.Error("[Snapshot] marshal accounts err:", err)
	}
	return bytes
}

// 从磁盘获取已有的账户信息（节点启动以及中途回退时执行）
func GetFromDisk() {
	mu.Lock()
	defer mu.Unlock()
	state.Accounts = map[string]meta.Account{}
	accountBytes := levelDB.DBGet(common.AccountsKey)
	if len(accountBytes) == 0 {
		return
	}
	_ = json.Unmarshal(accountBytes, &state.Accounts)
}

// 账户地址是否存在
func ContainsAddress(address string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := state.Accounts[address]
	return ok
}

// 获取账户信息
func GetAccount(address string) meta.Account {
	mu.RLock()
	defer mu.RUnlock()
	return state.Accounts[address]
}

// 获取所有的账户地址
func GetTotalAddress() []string {
	mu.RLock()
	defer mu.RUnlock()
	var totalAddress []string
	for address := range state.Accounts {
		totalAddress = append(totalAddress, address)
	}
	return totalAddress
}
