package mongo

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// 翻转点赞必须是一条 pipeline 更新：成员增删和计数重算同批落库,
// 这里校验两个阶段各自的形状。
func TestToggleLikePipeline(t *testing.T) {
	pipeline := toggleLikePipeline("user123")

	if len(pipeline) != 2 {
		t.Fatalf("pipeline has %d stages, want 2", len(pipeline))
	}

	first, err := bson.MarshalExtJSON(pipeline[0], false, false)
	if err != nil {
		t.Fatalf("marshal stage 1 failed: %v", err)
	}
	for _, op := range []string{"$set", "liked_by", "$cond", "$in", "$setDifference", "$concatArrays", "$ifNull", "user123"} {
		if !strings.Contains(string(first), op) {
			t.Errorf("stage 1 missing %s: %s", op, first)
		}
	}

	second, err := bson.MarshalExtJSON(pipeline[1], false, false)
	if err != nil {
		t.Fatalf("marshal stage 2 failed: %v", err)
	}
	for _, op := range []string{"$set", "likes", "$size", "$liked_by"} {
		if !strings.Contains(string(second), op) {
			t.Errorf("stage 2 missing %s: %s", op, second)
		}
	}
}
