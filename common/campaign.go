package common

// levelDB 众筹活动注册表的key
const CampaignsKey = "levelDBCampaignsKey"

// levelDB 认捐账本的key
const LedgerKey = "levelDBLedgerKey"

// 众筹时间窗口的最大长度（90天，unix秒）
const MaxCampaignDuration = 90 * 24 * 3600
