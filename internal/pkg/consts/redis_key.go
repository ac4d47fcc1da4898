package consts

const (
	IdentityUserNameKey  = "identity:user:name:"
	IdeaStatsCategoryKey = "idea:stats:category"
	IdeaStatsLikesKey    = "idea:stats:likes"
)
