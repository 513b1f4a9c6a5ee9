package model

// メニュー商品。作成後の部分更新はせず、置き換えのみ。
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// ---------------------------------------------------------
// デフォルトメニュー
// 保存データが無い/空/壊れている場合にこれを使う
// ---------------------------------------------------------
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "برجر نجف الخاص",
			Description: "قطعة لحم بلدي مشوية مع صوص نجف السري والجبنة السويسرية",
			Price:       85,
			Category:    "برجر",
			Image:       "https://picsum.photos/400/400?random=1",
		},
		{
			ID:          "2",
			Name:        "بيتزا سوبريم",
			Description: "عجينة رقيقة مقرمشة مع خضروات طازجة وبيبروني",
			Price:       120,
			Category:    "بيتزا",
			Image:       "https://picsum.photos/400/400?random=2",
		},
		{
			ID:          "3",
			Name:        "باستا ألفريدو",
			Description: "مكرونة فيتوتشيني مع صوص الكريمة والدجاج",
			Price:       95,
			Category:    "مكرونة",
			Image:       "https://picsum.photos/400/400?random=3",
		},
		{
			ID:          "4",
			Name:        "كولا باردة",
			Description: "مشروب غازي منعش مع الثلج",
			Price:       15,
			Category:    "مشروبات",
			Image:       "https://picsum.photos/400/400?random=4",
		},
	}
}
