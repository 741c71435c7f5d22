package campaign

import (
	"encoding/json"
	"time"

	"github.com/cloudflare/cfssl/log"

	"github.com/crowdfundV2/common"
	"github.com/crowdfundV2/levelDB"
	"github.com/crowdfundV2/meta"
)

/* 众筹活动注册表
 * 只追加的集合，活动id为槽位序号+1，单调递增且永不复用：
 * 注销只会清空槽位字段，不会压缩集合，确保id是永久的命名空间
 */

var registry []meta.Campaign

// 创建一个新的众筹活动并分配id。参数不合法时不分配id
func create(creator string, goal int, start, end int64) (int, error) {
	if creator == "" { // 空发起人会与已注销槽位的哨兵值混淆
		return 0, ErrInvalidCreator
	}
	if goal <= 0 {
		return 0, ErrInvalidGoal
	}
	now := time.Now().Unix()
	if start <= now || end <= start || end-start > common.MaxCampaignDuration {
		return 0, ErrInvalidWindow
	}
	c := meta.Campaign{
		Id:         len(registry) + 1,
		Creator:    creator,
		Goal:       goal,
		Pledged:    0,
		StartTime:  start,
		EndTime:    end,
		Donors:     nil,
		Claimed:    false,
		CanOperate: true,
	}
	registry = append(registry, c)
	return c.Id, nil
}

// 获取活动。id不存在或槽位已注销时返回ErrCampaignNotFound
func Get(id int) (meta.Campaign, error) {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return get(id)
}

// 不加锁的内部版本，引擎在持有写锁时使用
func get(id int) (meta.Campaign, error) {
	if id < 1 || id > len(registry) {
		return meta.Campaign{}, ErrCampaignNotFound
	}
	c := registry[id-1]
	if c.Creator == "" { // 已注销的槽位读出来是零值
		return meta.Campaign{}, ErrCampaignNotFound
	}
	return c, nil
}

// 返回注册表全量快照（包含已注销的零值槽位）
func List() []meta.Campaign {
	stateMu.RLock()
	defer stateMu.RUnlock()
	snapshot := make([]meta.Campaign, len(registry))
	copy(snapshot, registry)
	return snapshot
}

// 清空槽位（注销）。id永久退役，槽位不回收
func clear(id int) {
	if id < 1 || id > len(registry) {
		return
	}
	registry[id-1] = meta.Campaign{}
}

// 回写活动（仅引擎在提交点使用）
func setCampaign(c meta.Campaign) {
	if c.Id < 1 || c.Id > len(registry) {
		log.Errorf("[setCampaign] 非法活动id: %d", c.Id)
		return
	}
	registry[c.Id-1] = c
}

// 序列化注册表，供批量提交使用
func registrySnapshot() []byte {
	bytes, err := json.Marshal(registry)
	if err != nil {
		log.Error("[registrySnapshot] marshal err:", err)
	}
	return bytes
}

// 从磁盘恢复注册表与认捐账本（节点启动以及中途回退时执行，
// 回退路径在引擎写锁内调用，这里不加锁）
func InitFromDisk() {
	registry = nil
	if data := levelDB.DBGet(common.CampaignsKey); len(data) != 0 {
		_ = json.Unmarshal(data, &registry)
	}
	ledger = map[int]map[string]int{}
	if data := levelDB.DBGet(common.LedgerKey); len(data) != 0 {
		_ = json.Unmarshal(data, &ledger)
	}
}
