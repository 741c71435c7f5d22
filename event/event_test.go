package event

import (
	"testing"

	"github.com/crowdfundV2/meta"
)

func TestRecordAndQuery(t *testing.T) {
	Events = nil
	Record(meta.Event{Type: meta.EventCreated, CampaignId: 1, Address: "creator", Amount: 1000})
	Record(meta.Event{Type: meta.EventPledged, CampaignId: 1, Address: "donorA", Amount: 600})
	Record(meta.Event{Type: meta.EventPledged, CampaignId: 2, Address: "donorB", Amount: 500})

	got := GetByCampaign(1)
	if len(got) != 2 {
		t.Fatalf("活动1应有2条事件，实际 %d", len(got))
	}
	// 单次查询内的事件顺序与记录顺序一致
	if got[0].Type != meta.EventCreated || got[1].Type != meta.EventPledged {
		t.Errorf("事件顺序错误: %v", got)
	}
	if got[0].Timestamp == "" {
		t.Errorf("事件应带有时间戳")
	}
}
