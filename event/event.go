package event

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/crowdfundV2/common"
	"github.com/crowdfundV2/global"
	"github.com/crowdfundV2/levelDB"
	"github.com/crowdfundV2/meta"
	"github.com/crowdfundV2/redis"
	"github.com/crowdfundV2/util"
)

/* 领域事件日志
 * 事件是持久化的审计轨迹：每次成功的状态变更恰好记录一次，
 * 失败/中止的操作不会产生事件。单次操作内的事件顺序有意义
 */

var Events []meta.Event

// 客户端接口查询事件时可能与引擎提交并发，追加和遍历都要拿锁
var mu sync.Mutex

func InitEventData() {
	mu.Lock()
	defer mu.Unlock()
	Events = nil
	dataBytes := levelDB.DBGet(common.EventAllDataKey)
	if len(dataBytes) == 0 {
		return
	}
	_ = json.Unmarshal(dataBytes, &Events)
}

// 记录一条已提交的事件：内存追加、落盘、推送给外部消费者
func Record(e meta.Event) {
	e.Timestamp = time.Now().Format(time.RFC3339)
	mu.Lock()
	Events = append(Events, e)
	bytes, err := json.Marshal(Events)
	mu.Unlock()
	util.DealJsonErr("event.Record", err)
	levelDB.DBPut(common.EventAllDataKey, bytes)

	if global.RedisAddr != "" {
		data, _ := json.Marshal(e)
		_ = redis.PushToList(common.EventListKey, string(data))
	}

	// 推送给websocket端，前端未消费时直接丢弃，不能阻塞提交路径
	select {
	case global.EventLog <- e:
	default:
	}
}

// 查询某活动的全部事件（按记录顺序）
func GetByCampaign(id int) []meta.Event {
	mu.Lock()
	defer mu.Unlock()
	var res []meta.Event
	for _, e := range Events {
		if e.CampaignId == id {
			res = append(res, e)
		}
	}
	return res
}
