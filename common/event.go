package common

// 存储全部领域事件
const EventAllDataKey = "eventAllDataKey"

// redis 事件推送列表的key（供外部消费者订阅）
const EventListKey = "eventList"
