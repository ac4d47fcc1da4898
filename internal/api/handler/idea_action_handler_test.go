package handler

import (
	"IdeaVerse/internal/api/dto"
	"IdeaVerse/internal/pkg/response"
	"IdeaVerse/internal/service"
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeIdeaActionService struct {
	toggleFn  func(ctx context.Context, userID string, ideaID primitive.ObjectID) (*dto.ToggleLikeDTO, error)
	isLikedFn func(ctx context.Context, userID string, ideaID primitive.ObjectID) (bool, error)
	countFn   func(ctx context.Context, ideaID primitive.ObjectID) (int64, error)
	countsFn  func(ctx context.Context, ideaIDs []primitive.ObjectID) (map[string]int64, error)
}

func (f *fakeIdeaActionService) ToggleLike(ctx context.Context, userID string, ideaID primitive.ObjectID) (*dto.ToggleLikeDTO, error) {
	return f.toggleFn(ctx, userID, ideaID)
}

func (f *fakeIdeaActionService) IsLiked(ctx context.Context, userID string, ideaID primitive.ObjectID) (bool, error) {
	return f.isLikedFn(ctx, userID, ideaID)
}

func (f *fakeIdeaActionService) GetLikeCount(ctx context.Context, ideaID primitive.ObjectID) (int64, error) {
	return f.countFn(ctx, ideaID)
}

func (f *fakeIdeaActionService) GetLikeCounts(ctx context.Context, ideaIDs []primitive.ObjectID) (map[string]int64, error) {
	return f.countsFn(ctx, ideaIDs)
}

func (f *fakeIdeaActionService) GetCategoryStats(context.Context) (*dto.CategoryStatsDTO, error) {
	return &dto.CategoryStatsDTO{}, nil
}

func (f *fakeIdeaActionService) RefreshCategoryStats(context.Context) error {
	return nil
}

func newActionRouter(svc service.IdeaActionService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewIdeaActionHandler(svc)
	group := r.Group("/api/idea/action")
	{
		group.POST("/likes/:idea_id", asUser(userID, ""), h.ToggleLike)
		group.GET("/liked/:idea_id", asUser(userID, ""), h.GetLiked)
		group.GET("/state/:idea_id", asUser(userID, ""), h.GetActionState)
		group.POST("/batch/likes", h.GetBatchLikes)
	}
	return r
}

func TestToggleLikeHandler(t *testing.T) {
	targetID := primitive.NewObjectID()

	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "valid id", path: "/api/idea/action/likes/" + targetID.Hex(), wantCode: response.Ok},
		{name: "invalid id", path: "/api/idea/action/likes/not-hex", wantCode: response.BadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			var gotIdeaID primitive.ObjectID
			svc := &fakeIdeaActionService{
				toggleFn: func(_ context.Context, userID string, ideaID primitive.ObjectID) (*dto.ToggleLikeDTO, error) {
					gotUserID, gotIdeaID = userID, ideaID
					return &dto.ToggleLikeDTO{Likes: 3, Liked: true}, nil
				},
			}
			r := newActionRouter(svc, "user123")

			body := doJSON(t, r, "POST", tt.path, nil)
			if body.Code != tt.wantCode {
				t.Fatalf("business code = %d, want %d", body.Code, tt.wantCode)
			}
			if tt.wantCode != response.Ok {
				return
			}

			if gotUserID != "user123" || gotIdeaID != targetID {
				t.Errorf("service called with (%q, %s), want (user123, %s)", gotUserID, gotIdeaID.Hex(), targetID.Hex())
			}

			data, _ := body.Data.(map[string]interface{})
			if data["likes"] != float64(3) || data["liked"] != true {
				t.Errorf("data = %v, want likes=3 liked=true", data)
			}
		})
	}
}

func TestToggleLikeHandlerNotFound(t *testing.T) {
	svc := &fakeIdeaActionService{
		toggleFn: func(context.Context, string, primitive.ObjectID) (*dto.ToggleLikeDTO, error) {
			return nil, service.ErrIdeaNotFound
		},
	}
	r := newActionRouter(svc, "user123")

	body := doJSON(t, r, "POST", "/api/idea/action/likes/"+primitive.NewObjectID().Hex(), nil)
	if body.Code != response.NotFound {
		t.Errorf("business code = %d, want %d", body.Code, response.NotFound)
	}
}

func TestGetActionState(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		wantLiked bool
	}{
		{name: "authed caller gets membership", userID: "user123", wantLiked: true},
		{name: "anonymous caller skips membership", userID: "", wantLiked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeIdeaActionService{
				countFn: func(context.Context, primitive.ObjectID) (int64, error) {
					return 7, nil
				},
				isLikedFn: func(_ context.Context, userID string, _ primitive.ObjectID) (bool, error) {
					if userID == "" {
						t.Error("IsLiked must not be called for anonymous caller")
					}
					return true, nil
				},
			}
			r := newActionRouter(svc, tt.userID)

			body := doJSON(t, r, "GET", "/api/idea/action/state/"+primitive.NewObjectID().Hex(), nil)
			if body.Code != response.Ok {
				t.Fatalf("business code = %d, want %d", body.Code, response.Ok)
			}

			data, _ := body.Data.(map[string]interface{})
			if data["like_count"] != float64(7) {
				t.Errorf("like_count = %v, want 7", data["like_count"])
			}
			if data["is_liked"] != tt.wantLiked {
				t.Errorf("is_liked = %v, want %v", data["is_liked"], tt.wantLiked)
			}
		})
	}
}

func TestGetBatchLikes(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	svc := &fakeIdeaActionService{
		countsFn: func(_ context.Context, ideaIDs []primitive.ObjectID) (map[string]int64, error) {
			counts := make(map[string]int64, len(ideaIDs))
			for _, id := range ideaIDs {
				counts[id.Hex()] = 1
			}
			return counts, nil
		},
	}
	r := newActionRouter(svc, "")

	t.Run("valid batch", func(t *testing.T) {
		body := doJSON(t, r, "POST", "/api/idea/action/batch/likes", dto.IdeaBatchLikesReq{
			IdeaIDs: []string{first.Hex(), second.Hex()},
		})
		if body.Code != response.Ok {
			t.Fatalf("business code = %d, want %d", body.Code, response.Ok)
		}

		data, _ := body.Data.(map[string]interface{})
		likes, _ := data["likes"].(map[string]interface{})
		if len(likes) != 2 {
			t.Errorf("likes has %d entries, want 2", len(likes))
		}
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		body := doJSON(t, r, "POST", "/api/idea/action/batch/likes", dto.IdeaBatchLikesReq{})
		if body.Code != response.BadRequest {
			t.Errorf("business code = %d, want %d", body.Code, response.BadRequest)
		}
	})

	t.Run("malformed id rejected", func(t *testing.T) {
		body := doJSON(t, r, "POST", "/api/idea/action/batch/likes", dto.IdeaBatchLikesReq{
			IdeaIDs: []string{"not-hex"},
		})
		if body.Code != response.BadRequest {
			t.Errorf("business code = %d, want %d", body.Code, response.BadRequest)
		}
	})
}
