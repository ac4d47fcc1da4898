package util

import (
	"IdeaVerse/internal/pkg/consts"
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// GetSafeContentType 嗅探文件真实类型，不信任客户端声明的 Content-Type
func GetSafeContentType(file io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// NormalizeImage 解码封面图并在超宽时等比缩放，统一重编码后返回。
// 重编码同时保证存入的确实是一张可解码的图片。
func NormalizeImage(reader io.Reader) (io.Reader, int64, string, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, 0, "", fmt.Errorf("图片解码失败: %w", err)
	}

	if img.Bounds().Dx() > consts.MaxImageWidth {
		img = imaging.Resize(img, consts.MaxImageWidth, 0, imaging.Lanczos)
	}

	var out bytes.Buffer
	switch format {
	case "png":
		if err = imaging.Encode(&out, img, imaging.PNG); err != nil {
			return nil, 0, "", err
		}
		return &out, int64(out.Len()), "image/png", nil
	default:
		if err = imaging.Encode(&out, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
			return nil, 0, "", err
		}
		return &out, int64(out.Len()), "image/jpeg", nil
	}
}
