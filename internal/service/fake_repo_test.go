package service

import (
	"IdeaVerse/internal/pkg/mongo"
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// fakeIdeaRepo 内存版 IdeaRepo，行为对齐真实实现：
// 不存在返回 mongo.ErrNoDocuments，ToggleLike 在单次调用内同时变更成员与计数。
type fakeIdeaRepo struct {
	mu    sync.Mutex
	ideas []*mongo.IdeaModel
}

func newFakeIdeaRepo() *fakeIdeaRepo {
	return &fakeIdeaRepo{}
}

func (f *fakeIdeaRepo) Insert(_ context.Context, idea *mongo.IdeaModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	idea.ID = primitive.NewObjectID()
	f.ideas = append(f.ideas, cloneIdea(idea))
	return nil
}

func (f *fakeIdeaRepo) InsertMany(ctx context.Context, ideas []*mongo.IdeaModel) error {
	for _, idea := range ideas {
		if err := f.Insert(ctx, idea); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeIdeaRepo) FindAll(_ context.Context) ([]*mongo.IdeaModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findSorted(func(*mongo.IdeaModel) bool { return true }), nil
}

func (f *fakeIdeaRepo) FindByCategory(_ context.Context, category string) ([]*mongo.IdeaModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findSorted(func(i *mongo.IdeaModel) bool { return i.Category == category }), nil
}

func (f *fakeIdeaRepo) findSorted(match func(*mongo.IdeaModel) bool) []*mongo.IdeaModel {
	list := make([]*mongo.IdeaModel, 0)
	for _, idea := range f.ideas {
		if match(idea) {
			list = append(list, cloneIdea(idea))
		}
	}
	sort.SliceStable(list, func(a, b int) bool {
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
	return list
}

func (f *fakeIdeaRepo) FindByID(_ context.Context, id primitive.ObjectID) (*mongo.IdeaModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idea := f.locate(id)
	if idea == nil {
		return nil, mongodriver.ErrNoDocuments
	}
	return cloneIdea(idea), nil
}

func (f *fakeIdeaRepo) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) (*mongo.IdeaModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idea := f.locate(id)
	if idea == nil {
		return nil, mongodriver.ErrNoDocuments
	}
	for key, value := range fields {
		str, _ := value.(string)
		switch key {
		case "title":
			idea.Title = str
		case "description":
			idea.Description = str
		case "category":
			idea.Category = str
		case "image_url":
			idea.ImageURL = str
		}
	}
	return cloneIdea(idea), nil
}

func (f *fakeIdeaRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, idea := range f.ideas {
		if idea.ID == id {
			f.ideas = append(f.ideas[:i], f.ideas[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeIdeaRepo) DeleteAll(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ideas = nil
	return nil
}

func (f *fakeIdeaRepo) ToggleLike(_ context.Context, id primitive.ObjectID, userID string) (*mongo.IdeaModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idea := f.locate(id)
	if idea == nil {
		return nil, mongodriver.ErrNoDocuments
	}

	members := make([]string, 0, len(idea.LikedBy)+1)
	found := false
	for _, uid := range idea.LikedBy {
		if uid == userID {
			found = true
			continue
		}
		members = append(members, uid)
	}
	if !found {
		members = append(members, userID)
	}
	idea.LikedBy = members
	idea.Likes = int64(len(members))

	return cloneIdea(idea), nil
}

func (f *fakeIdeaRepo) LikeCounts(_ context.Context, ids []primitive.ObjectID) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := make(map[string]int64, len(ids))
	for _, id := range ids {
		if idea := f.locate(id); idea != nil {
			counts[id.Hex()] = idea.Likes
		}
	}
	return counts, nil
}

func (f *fakeIdeaRepo) CountByCategory(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := make(map[string]int64)
	for _, idea := range f.ideas {
		counts[idea.Category]++
	}
	return counts, nil
}

func (f *fakeIdeaRepo) SumLikes(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var total int64
	for _, idea := range f.ideas {
		total += idea.Likes
	}
	return total, nil
}

func (f *fakeIdeaRepo) locate(id primitive.ObjectID) *mongo.IdeaModel {
	for _, idea := range f.ideas {
		if idea.ID == id {
			return idea
		}
	}
	return nil
}

func cloneIdea(idea *mongo.IdeaModel) *mongo.IdeaModel {
	out := *idea
	out.LikedBy = append([]string(nil), idea.LikedBy...)
	return &out
}
