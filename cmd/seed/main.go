package main

import (
	"IdeaVerse/internal/api/config"
	"IdeaVerse/internal/pkg/logger"
	"IdeaVerse/internal/pkg/mongo"
	"context"
	log "log/slog"
	"time"
)

// sampleIdeas 示例数据，执行后覆盖集合中的现有内容
var sampleIdeas = []*mongo.IdeaModel{
	{
		Title:       "AI-Powered Smart Home Assistant",
		Description: "A next-generation smart home assistant that uses artificial intelligence to learn your habits and preferences. It can control all your smart devices, anticipate your needs, and make your home truly intelligent. The system uses machine learning to adapt to your lifestyle over time, making your home more efficient and comfortable.",
		Category:    "Technology",
		ImageURL:    "https://images.unsplash.com/photo-1550009158-9ebf69173e03?auto=format&fit=crop&w=1201&q=80",
		UserID:      "user123",
		UserName:    "Tech Innovator",
	},
	{
		Title:       "Sustainable Urban Farming Initiative",
		Description: "A community-based urban farming project that transforms unused urban spaces into productive gardens. This initiative aims to increase local food production, reduce carbon footprint from food transportation, and create green spaces in urban environments. The project includes vertical farming techniques, hydroponics, and community education programs.",
		Category:    "Business",
		ImageURL:    "https://images.unsplash.com/photo-1530836369250-ef72a3f5cda8?auto=format&fit=crop&w=1170&q=80",
		UserID:      "user456",
		UserName:    "Green Entrepreneur",
	},
	{
		Title:       "Virtual Reality Educational Platform",
		Description: "An immersive educational platform that uses virtual reality to make learning more engaging and effective. Students can explore historical sites, conduct virtual science experiments, or practice language skills in simulated real-world environments. The platform adapts to different learning styles and provides personalized learning paths for each student.",
		Category:    "Education",
		ImageURL:    "https://images.unsplash.com/photo-1617802690992-15d93263d3a9?auto=format&fit=crop&w=1170&q=80",
		UserID:      "user789",
		UserName:    "Education Innovator",
	},
	{
		Title:       "Mental Health Tracking App",
		Description: "A comprehensive mental health app that helps users track their mood, sleep, and stress levels. It provides personalized recommendations for improving mental wellbeing based on user data and scientific research. The app includes guided meditation sessions, cognitive behavioral therapy exercises, and connection to professional help when needed.",
		Category:    "Health",
		ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&w=1160&q=80",
		UserID:      "user101",
		UserName:    "Health Advocate",
	},
	{
		Title:       "Interactive Storytelling Platform",
		Description: "A digital platform that allows users to create and experience interactive stories across multiple media formats. The platform combines elements of gaming, literature, and film to create immersive narratives where the audience can influence the storyline. It supports collaborative storytelling and provides tools for creators to monetize their content.",
		Category:    "Entertainment",
		ImageURL:    "https://images.unsplash.com/photo-1485846234645-a62644f84728?auto=format&fit=crop&w=1159&q=80",
		UserID:      "user202",
		UserName:    "Creative Director",
	},
	{
		Title:       "Ocean Plastic Cleanup Drone",
		Description: "An autonomous drone system designed to collect plastic waste from oceans and waterways. These solar-powered drones can identify, collect, and sort plastic waste, helping to address the global plastic pollution crisis. The collected plastic is then recycled into useful products, creating a circular economy solution to ocean pollution.",
		Category:    "Other",
		ImageURL:    "https://images.unsplash.com/photo-1621451537084-482c73073a0f?auto=format&fit=crop&w=1074&q=80",
		UserID:      "user303",
		UserName:    "Environmental Engineer",
	},
}

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}

	logger.InitLogger()

	db, err := mongo.InitMongo(config.Cfg.Mongo)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		panic(err)
	}

	repo := mongo.NewIdeaRepo(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err = repo.DeleteAll(ctx); err != nil {
		log.Error("Fatal error: failed to clear ideas", "err", err)
		panic(err)
	}
	log.Info("Cleared existing ideas")

	now := time.Now()
	for _, idea := range sampleIdeas {
		idea.Likes = 0
		idea.LikedBy = []string{}
		idea.CreatedAt = now
	}

	if err = repo.InsertMany(ctx, sampleIdeas); err != nil {
		log.Error("Fatal error: failed to insert sample ideas", "err", err)
		panic(err)
	}
	log.Info("Added sample ideas", "count", len(sampleIdeas))
}
