package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// SlugOptions menentukan cara cek keunikan slug di DB.
type SlugOptions struct {
	// Nama tabel di DB, contoh: "providers"
	Table string
	// Nama kolom untuk slug, contoh: "slug"
	SlugColumn string
	// Panjang maksimal slug (termasuk suffix -2, -3, dst).
	MaxLen int
	// Base fallback jika input kosong setelah dinormalisasi.
	DefaultBase string
}

// GenerateSlug menormalkan string menjadi slug:
// - lower-case
// - spasi & non-alnum jadi "-"
// - collapse multiple "-" -> satu "-"
// - trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")

	reDash := regexp.MustCompile(`-+`)
	return reDash.ReplaceAllString(out, "-")
}

func cutToLen(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return strings.Trim(s, "-")
	}
	return strings.Trim(s[:n], "-")
}

func isTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}

	var cnt int64
	err := db.Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerateUniqueSlug membuat slug unik berbasis "base" (atau DefaultBase bila
// kosong), unik secara case-insensitive.
//
// 1) Coba base dulu.
// 2) Jika bentrok, coba base-2, base-3, ... sampai ketemu.
func GenerateUniqueSlug(db *gorm.DB, opts SlugOptions, base string) (string, error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	slug := GenerateSlug(base)
	if slug == "" {
		slug = GenerateSlug(opts.DefaultBase)
	}
	if slug == "" {
		return "", errors.New("slug options: default base required")
	}
	slug = cutToLen(slug, maxLen)

	taken, err := isTaken(db, opts, slug)
	if err != nil {
		return "", err
	}
	if !taken {
		return slug, nil
	}

	for i := 2; i <= 200; i++ {
		suffix := fmt.Sprintf("-%d", i)
		candidate := cutToLen(slug, maxLen-len(suffix)) + suffix
		taken, err := isTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("gagal membuat slug unik untuk %q", base)
}
