package model

import "time"

type BannerType string

const (
	BannerTypeHome    BannerType = "home"
	BannerTypeCatalog BannerType = "catalog"
)

func (t BannerType) Valid() bool {
	return t == BannerTypeHome || t == BannerTypeCatalog
}

type Banner struct {
	ID        string
	Title     string
	Subtitle  string
	Image     string
	LinkURL   string
	Type      BannerType
	Order     int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateBannerParams struct {
	Title    string
	Subtitle string
	Image    string
	LinkURL  string
	Type     BannerType
	Order    int
	Active   *bool
}

type UpdateBannerParams struct {
	Title    *string
	Subtitle *string
	Image    *string
	LinkURL  *string
	Type     *BannerType
	Order    *int
	Active   *bool
}

type BannerFilter struct {
	Type       *BannerType
	ActiveOnly bool
}
