package helper

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"pelatihanku_backend/internals/configs"
)

// Dimensi maksimum gambar tanda tangan sebelum diunggah.
const (
	signatureMaxW = 1200
	signatureMaxH = 800
)

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
}

func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := configs.OSSEndpoint
	ak := configs.OSSAccessKey
	sk := configs.OSSSecretKey
	bucketName := configs.OSSBucket
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Verifikasi ringan lokasi bucket
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
	}, nil
}

// SignatureKey membangun object key deterministik untuk tanda tangan sesi.
// Retry finalisasi menimpa objek yang sama, jadi objek yatim aman dibiarkan.
func SignatureKey(sessionID uint) string {
	return fmt.Sprintf("training/signatures/%d.jpg", sessionID)
}

// UploadSignatureJPEG mengunggah tanda tangan (sudah ternormalisasi JPEG) dan
// mengembalikan URL publiknya.
func (s *OSSService) UploadSignatureJPEG(ctx context.Context, sessionID uint, data []byte) (string, error) {
	key := SignatureKey(sessionID)

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType("image/jpeg"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) PublicURL(key string) string {
	ep := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, ep, key)
}

/* =======================================================================
   Decode + normalisasi gambar tanda tangan
   (jpeg/png/webp → downscale bila perlu → JPEG)
======================================================================= */

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty image")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("format tidak didukung: %s", ct)
	}
}

// downscale keep-aspect pakai CatmullRom (kualitas bagus).
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// NormalizeSignatureJPEG menerima bytes hasil decode base64 dari klien dan
// mengembalikan JPEG siap upload. Error di sini berarti payload klien rusak.
func NormalizeSignatureJPEG(data []byte) ([]byte, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, signatureMaxW, signatureMaxH)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
