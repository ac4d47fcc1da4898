package consts

const (
	MimePrefixImage = "image"
)

// Categories 创意分类的闭合集合
var Categories = []string{
	"Technology",
	"Business",
	"Education",
	"Health",
	"Entertainment",
	"Other",
}

const (
	// MaxImageWidth 封面图最大宽度，超出则等比缩放
	MaxImageWidth = 1600
)
