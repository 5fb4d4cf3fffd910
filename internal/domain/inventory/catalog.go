package inventory

import (
	"strings"

	"github.com/brown009872/payroll-app/internal/pkg/utils"
)

// CatalogSupplier is the supplier of every catalog product.
const CatalogSupplier = "Wujia Tea"

type Category string

const (
	CategoryTea        Category = "TRA"
	CategoryIngredient Category = "NGUYEN_LIEU"
	CategoryAuxiliary  Category = "PHU_LIEU"
	CategoryMaterial   Category = "VAT_LIEU"
	CategoryCustom     Category = "SAN_PHAM_DAT_RIENG"
	CategoryEquipment  Category = "THIET_BI"
)

var CategoryValues = []string{
	string(CategoryTea),
	string(CategoryIngredient),
	string(CategoryAuxiliary),
	string(CategoryMaterial),
	string(CategoryCustom),
	string(CategoryEquipment),
}

// Product is one orderable item of the supplier price list. UnitPrice is in VND.
type Product struct {
	ID        string   `json:"id"`
	Category  Category `json:"category"`
	NameVi    string   `json:"name_vi"`
	NameCn    string   `json:"name_cn"`
	Packaging string   `json:"packaging"`
	Unit      string   `json:"unit"`
	UnitPrice int64    `json:"unit_price"`
}

var catalog = []Product{
	{ID: "wujia-t-001", Category: CategoryTea, NameVi: "Hồng Trà Đài Loan", NameCn: "台灣紅茶", Packaging: "10kg/bao", Unit: "Bao", UnitPrice: 125000},
	{ID: "wujia-t-002", Category: CategoryTea, NameVi: "Hồng Trà Đài Loan KHÔNG Đường", NameCn: "台灣無糖紅茶", Packaging: "4kg/bao", Unit: "Bao", UnitPrice: 45000},
	{ID: "wujia-t-003", Category: CategoryTea, NameVi: "Trà Bí Đao", NameCn: "冬瓜茶", Packaging: "10kg/bao", Unit: "Bao", UnitPrice: 132000},
	{ID: "wujia-t-004", Category: CategoryTea, NameVi: "Trà Xí Muội Ngô Gia", NameCn: "吳家酸梅湯", Packaging: "10kg/bao", Unit: "Bao", UnitPrice: 160000},
	{ID: "wujia-t-005", Category: CategoryTea, NameVi: "Hồng Trà Vải Thiều", NameCn: "荔枝紅茶", Packaging: "10kg/bao", Unit: "Bao", UnitPrice: 132000},
	{ID: "wujia-t-006", Category: CategoryTea, NameVi: "Trà Xanh Hoa Nhài", NameCn: "綠茶", Packaging: "10kg/bao", Unit: "Bao", UnitPrice: 132000},
	{ID: "wujia-t-007", Category: CategoryTea, NameVi: "Trà Xanh KHÔNG Đường", NameCn: "無糖綠", Packaging: "4kg/bao", Unit: "Bao", UnitPrice: 50000},
	{ID: "wujia-t-008", Category: CategoryTea, NameVi: "Trà Ô Long Bạch Đào có đường", NameCn: "白桃烏龍茶有糖", Packaging: "10kg/bao", Unit: "Bao", UnitPrice: 132000},
	{ID: "wujia-t-009", Category: CategoryTea, NameVi: "Trà Ô Long Bạch Đào không đường", NameCn: "白桃烏龍茶無糖", Packaging: "4kg/bao", Unit: "Bao", UnitPrice: 50000},

	{ID: "wujia-n-001", Category: CategoryIngredient, NameVi: "Pudding Trứng", NameCn: "鸡蛋布丁", Packaging: "120 cái / thùng", Unit: "Hộp", UnitPrice: 5000},
	{ID: "wujia-n-002", Category: CategoryIngredient, NameVi: "Sữa Tươi", NameCn: "鮮奶", Packaging: "2L/bình", Unit: "Bình", UnitPrice: 70000},
	{ID: "wujia-n-003", Category: CategoryIngredient, NameVi: "Thạch Aiyu", NameCn: "愛玉凍", Packaging: "1kg/hộp", Unit: "Hộp", UnitPrice: 37000},
	{ID: "wujia-n-004", Category: CategoryIngredient, NameVi: "Thạch Q Ngô Gia", NameCn: "吳家Q凍", Packaging: "1kg/hộp", Unit: "Hộp", UnitPrice: 50000},
	{ID: "wujia-n-005", Category: CategoryIngredient, NameVi: "Thạch Sương Sáo", NameCn: "仙草凍", Packaging: "1kg/hộp", Unit: "Hộp", UnitPrice: 28000},
	{ID: "wujia-n-006", Category: CategoryIngredient, NameVi: "Thạch Sương Sáo Viên", NameCn: "仙草凍球", Packaging: "1kg/hộp", Unit: "Hộp", UnitPrice: 38000},
	{ID: "wujia-n-007", Category: CategoryIngredient, NameVi: "Thạch Sữa Viên", NameCn: "奶凍球", Packaging: "1kg/hộp", Unit: "Hộp", UnitPrice: 47000},
	{ID: "wujia-n-008", Category: CategoryIngredient, NameVi: "Khoai Môn Nghiền", NameCn: "芋泥", Packaging: "1kg / hộp", Unit: "Hộp", UnitPrice: 60000},
	{ID: "wujia-n-009", Category: CategoryIngredient, NameVi: "Trân Châu Khoai Môn 500G", NameCn: "小芋圓", Packaging: "30 bao / 1 thùng", Unit: "Bao", UnitPrice: 32000},
	{ID: "wujia-n-010", Category: CategoryIngredient, NameVi: "Khoai Dẻo Tam Sắc", NameCn: "三色Q薯圆", Packaging: "1kg/bao (20bao/thùng)", Unit: "Bao", UnitPrice: 51000},
	{ID: "wujia-n-011", Category: CategoryIngredient, NameVi: "Trân Châu Củ Năng", NameCn: "马蹄粉圆", Packaging: "1kg/bao (20bao/thùng)", Unit: "Bao", UnitPrice: 85000},
	{ID: "wujia-n-012", Category: CategoryIngredient, NameVi: "Trân Châu Vị Dâu", NameCn: "草莓粉圆", Packaging: "1kg/bao (20bao/thùng)", Unit: "Bao", UnitPrice: 76000},
	{ID: "wujia-n-013", Category: CategoryIngredient, NameVi: "Bánh Vuông Đường Đen", NameCn: "黑糖小快蛋糕", Packaging: "1kg/bao (20bao/thùng)", Unit: "Bao", UnitPrice: 51000},
	{ID: "wujia-n-014", Category: CategoryIngredient, NameVi: "Kem Béo Thực Vật 1Kg", NameCn: "奶精", Packaging: "12 hộp/thùng", Unit: "Hộp", UnitPrice: 50000},
	{ID: "wujia-n-015", Category: CategoryIngredient, NameVi: "Kem Béo Vị Sữa (500g)", NameCn: "奶油 (500g)", Packaging: "24hộp/thùng", Unit: "Hộp", UnitPrice: 35000},
	{ID: "wujia-n-016", Category: CategoryIngredient, NameVi: "Kem Vani 3 Kg", NameCn: "3公斤香草冰淇淋", Packaging: "3kg/hộp", Unit: "Hộp", UnitPrice: 240000},
	{ID: "wujia-n-017", Category: CategoryIngredient, NameVi: "Hạt é 100g", NameCn: "100克奇亞籽", Packaging: "100g/gói", Unit: "Gói", UnitPrice: 16000},
	{ID: "wujia-n-018", Category: CategoryIngredient, NameVi: "Đào Ngâm Nước Đường", NameCn: "葡萄牙水蜜桃罐头", Packaging: "12lon/thùng", Unit: "Hộp", UnitPrice: 32000},
	{ID: "wujia-n-019", Category: CategoryIngredient, NameVi: "Mứt Nho", NameCn: "葡萄醬", Packaging: "12lon/thùng", Unit: "Lon", UnitPrice: 89000},
	{ID: "wujia-n-020", Category: CategoryIngredient, NameVi: "Sốt Phô Mai", NameCn: "起司醬", Packaging: "1kg/chai", Unit: "Chai", UnitPrice: 172000},
	{ID: "wujia-n-021", Category: CategoryIngredient, NameVi: "Sốt Socola (680g)", NameCn: "巧克力酱", Packaging: "24chai/thùng", Unit: "Chai", UnitPrice: 69000},
	{ID: "wujia-n-022", Category: CategoryIngredient, NameVi: "Thạch Đào 2.5 Kg", NameCn: "蜜桃椰果", Packaging: "6hộp/thùng", Unit: "Hộp", UnitPrice: 57000},
	{ID: "wujia-n-023", Category: CategoryIngredient, NameVi: "Thạch Dừa Nguyên Vị", NameCn: "原味椰果", Packaging: "20bao/thùng", Unit: "Hộp", UnitPrice: 22000},
	{ID: "wujia-n-024", Category: CategoryIngredient, NameVi: "Trân Châu Trắng 3Q 1 Kg", NameCn: "原味寒天", Packaging: "20bao/thùng", Unit: "Bao", UnitPrice: 35000},
	{ID: "wujia-n-025", Category: CategoryIngredient, NameVi: "Trân Châu Đường Đen", NameCn: "黑糖珍珠", Packaging: "6bao/thùng", Unit: "Bao", UnitPrice: 88000},
	{ID: "wujia-n-026", Category: CategoryIngredient, NameVi: "Trân châu Ngũ Sắc", NameCn: "五色珍珠", Packaging: "1kg/bao", Unit: "Bao", UnitPrice: 33000},
	{ID: "wujia-n-027", Category: CategoryIngredient, NameVi: "Bánh Đựng Kem", NameCn: "冰淇淋卷筒", Packaging: "100 cái/thùng", Unit: "Thùng", UnitPrice: 70000},
	{ID: "wujia-n-028", Category: CategoryIngredient, NameVi: "Muối hồng", NameCn: "玫瑰鹽", Packaging: "200g/hộp", Unit: "Hộp", UnitPrice: 20000},
	{ID: "wujia-n-029", Category: CategoryIngredient, NameVi: "Hạt sen (450g)", NameCn: "蓮子罐頭 (450g)", Packaging: "450G/Lon", Unit: "Lon", UnitPrice: 45000},

	{ID: "phu-lieu-001", Category: CategoryAuxiliary, NameVi: "Nước Cốt Chanh", NameCn: "檸檬汁", Packaging: "20 bao / 1 thùng", Unit: "Bao", UnitPrice: 55000},
	{ID: "phu-lieu-002", Category: CategoryAuxiliary, NameVi: "Nước Cốt Ổi Đỏ", NameCn: "紅心芭樂汁", Packaging: "20 bao / 1 thùng", Unit: "Bao", UnitPrice: 36000},
	{ID: "phu-lieu-003", Category: CategoryAuxiliary, NameVi: "Nước Đường", NameCn: "蔗糖", Packaging: "4 bình/thùng", Unit: "Bình", UnitPrice: 144000},
	{ID: "phu-lieu-004", Category: CategoryAuxiliary, NameVi: "Siro Đường Đen", NameCn: "黑糖漿", Packaging: "6 bình/thùng", Unit: "Bình", UnitPrice: 120000},
	{ID: "phu-lieu-005", Category: CategoryAuxiliary, NameVi: "Xí Muội", NameCn: "话梅", Packaging: "50 bao / 1 thùng", Unit: "Bao", UnitPrice: 84000},

	{ID: "vat-lieu-001", Category: CategoryMaterial, NameVi: "Túi 1 Ly", NameCn: "一杯袋", Packaging: "10kg/thùng", Unit: "kg", UnitPrice: 60000},
	{ID: "vat-lieu-002", Category: CategoryMaterial, NameVi: "Túi 2 Ly", NameCn: "二杯袋", Packaging: "10kg/thùng", Unit: "kg", UnitPrice: 60000},
	{ID: "vat-lieu-003", Category: CategoryMaterial, NameVi: "Túi 4 Ly", NameCn: "四杯袋", Packaging: "10kg/thùng", Unit: "kg", UnitPrice: 60000},
	{ID: "vat-lieu-004", Category: CategoryMaterial, NameVi: "Túi đựng đá viên", NameCn: "裝冰袋", Packaging: "1.000cái/thùng", Unit: "Thùng", UnitPrice: 900000},
	{ID: "vat-lieu-005", Category: CategoryMaterial, NameVi: "Nón Wujia size L", NameCn: "", Packaging: "", Unit: "Cái", UnitPrice: 63000},
	{ID: "vat-lieu-006", Category: CategoryMaterial, NameVi: "Ly Đựng Topping", NameCn: "装加料杯子", Packaging: "1000 cái / thùng", Unit: "Thùng", UnitPrice: 620000},
	{ID: "vat-lieu-007", Category: CategoryMaterial, NameVi: "Ly Nhựa 960cc (Giáng Sinh)", NameCn: "塑膠杯 (圣诞节)", Packaging: "", Unit: "Thùng", UnitPrice: 980000},
	{ID: "vat-lieu-008", Category: CategoryMaterial, NameVi: "Ly Nhựa 700cc (Giáng Sinh)", NameCn: "塑膠杯 (圣诞节)", Packaging: "", Unit: "Thùng", UnitPrice: 750000},
	{ID: "vat-lieu-009", Category: CategoryMaterial, NameVi: "Ống Hút Lớn 3000", NameCn: "粗吸管", Packaging: "3000 ống / 1 thùng", Unit: "Thùng", UnitPrice: 600000},
	{ID: "vat-lieu-010", Category: CategoryMaterial, NameVi: "Ống Hút Nhỏ 3000", NameCn: "細吸管", Packaging: "3000 cái / thùng", Unit: "Thùng", UnitPrice: 468000},
	{ID: "vat-lieu-011", Category: CategoryMaterial, NameVi: "Thùng trà nhỏ (4kg)", NameCn: "小茶桶（四公斤）", Packaging: "Dùng cho loại trà Không Đường (4kg)", Unit: "Cái", UnitPrice: 170000},
	{ID: "vat-lieu-012", Category: CategoryMaterial, NameVi: "Nắp kem cheese", NameCn: "奶蓋蓋子", Packaging: "1000 cái/thùng", Unit: "Thùng", UnitPrice: 380000},
	{ID: "vat-lieu-013", Category: CategoryMaterial, NameVi: "Nắp Ly Lớn", NameCn: "大杯蓋", Packaging: "500 cái / 1 thùng", Unit: "Thùng", UnitPrice: 540000},
	{ID: "vat-lieu-014", Category: CategoryMaterial, NameVi: "Nắp Ly Nhỏ", NameCn: "小杯蓋", Packaging: "1000 cái / 1 thùng", Unit: "Thùng", UnitPrice: 380000},
	{ID: "vat-lieu-015", Category: CategoryMaterial, NameVi: "Muỗng Nhựa", NameCn: "塑料勺子", Packaging: "2000 cái / thùng", Unit: "Thùng", UnitPrice: 600000},
	{ID: "vat-lieu-016", Category: CategoryMaterial, NameVi: "Tem dán ly Ngô Gia", NameCn: "", Packaging: "100 cuộn/thùng", Unit: "Thùng", UnitPrice: 1900000},
	{ID: "vat-lieu-017", Category: CategoryMaterial, NameVi: "Cuộn màng dập ly Trung Quốc", NameCn: "中國封口膜", Packaging: "6 cuộn/ 1 thùng", Unit: "Cuộn", UnitPrice: 300000},
	{ID: "vat-lieu-018", Category: CategoryMaterial, NameVi: "Khung nam châm", NameCn: "", Packaging: "", Unit: "Cái", UnitPrice: 16000},
	{ID: "vat-lieu-019", Category: CategoryMaterial, NameVi: "Giấy dầu lót chống tràn", NameCn: "防漏紙", Packaging: "500miếng/gói", Unit: "Gói", UnitPrice: 30000},
	{ID: "vat-lieu-020", Category: CategoryMaterial, NameVi: "Giấy in hóa đơn 30m (dành cho máy Pos để bàn)", NameCn: "", Packaging: "100 cuộn/thùng", Unit: "Thùng", UnitPrice: 1300000},
	{ID: "vat-lieu-021", Category: CategoryMaterial, NameVi: "Giấy in hóa đơn 13m (dành cho máy Pos cầm tay)", NameCn: "", Packaging: "100 cuộn/thùng", Unit: "Thùng", UnitPrice: 650000},

	{ID: "san-pham-dat-rieng-001", Category: CategoryCustom, NameVi: "Túi giữ nhiệt 2", NameCn: "保溫袋", Packaging: "", Unit: "Cái", UnitPrice: 2000},
	{ID: "san-pham-dat-rieng-002", Category: CategoryCustom, NameVi: "Túi giữ nhiệt 4", NameCn: "保溫袋", Packaging: "", Unit: "Cái", UnitPrice: 4500},
	{ID: "san-pham-dat-rieng-003", Category: CategoryCustom, NameVi: "Tạp dề (size lớn)", NameCn: "圍裙（大）", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-004", Category: CategoryCustom, NameVi: "Tạp dề (size nhỏ)", NameCn: "圍裙（小）", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-005", Category: CategoryCustom, NameVi: "Áo Mưa Tiện Lợi Wujia", NameCn: "屋家便利雨衣", Packaging: "", Unit: "Cái", UnitPrice: 5000},
	{ID: "san-pham-dat-rieng-006", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nữ size S", NameCn: "制服T恤女版 S", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-007", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nam size 5XL", NameCn: "制服T恤男版 5XL", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-008", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nữ size M", NameCn: "制服T恤女版 M", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-009", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nữ size L", NameCn: "制服T恤女版 L", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-010", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nữ size XL", NameCn: "制服T恤女版 XL", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-011", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nam size M", NameCn: "制服T恤男版 M", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-012", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nam size L", NameCn: "制服T恤男版 L", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-013", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nam size XL", NameCn: "制服T恤男版 XL", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-014", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nam size 2XL", NameCn: "制服T恤男版 2XL", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-015", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nam size 3XL", NameCn: "制服T恤男版 3XL", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-016", Category: CategoryCustom, NameVi: "Áo Đồng Phục Nam size 4XL", NameCn: "制服T恤男版 4XL", Packaging: "", Unit: "Cái", UnitPrice: 120000},
	{ID: "san-pham-dat-rieng-017", Category: CategoryCustom, NameVi: "Ly Múc Trà", NameCn: "紅茶杯", Packaging: "100 cái / thùng", Unit: "Cái", UnitPrice: 24000},
	{ID: "san-pham-dat-rieng-018", Category: CategoryCustom, NameVi: "Thùng trà lớn (10kg)", NameCn: "大茶桶（十公斤）", Packaging: "Dùng cho loại trà Có Đường (10kg)", Unit: "Cái", UnitPrice: 270000},
	{ID: "san-pham-dat-rieng-019", Category: CategoryCustom, NameVi: "Nắp Khay", NameCn: "加料盒蓋子", Packaging: "", Unit: "Cái", UnitPrice: 70000},
	{ID: "san-pham-dat-rieng-020", Category: CategoryCustom, NameVi: "Muỗng Múc Kem", NameCn: "冰淇淋挖勺", Packaging: "", Unit: "Cái", UnitPrice: 150000},
	{ID: "san-pham-dat-rieng-021", Category: CategoryCustom, NameVi: "Khay Đựng Topping", NameCn: "加料盒", Packaging: "", Unit: "Cái", UnitPrice: 118000},

	{ID: "thiet-bi-001", Category: CategoryEquipment, NameVi: "Nắp Đậy Thùng Trà", NameCn: "茶桶蓋子", Packaging: "", Unit: "Cái", UnitPrice: 85000},
	{ID: "thiet-bi-002", Category: CategoryEquipment, NameVi: "Máy Ép Miệng Ly", NameCn: "封口機", Packaging: "", Unit: "Cái", UnitPrice: 16000000},
}

var catalogIndex = func() map[string]Product {
	m := make(map[string]Product, len(catalog))
	for _, p := range catalog {
		m[p.ID] = p
	}
	return m
}()

// FindProduct looks up a catalog product by id.
func FindProduct(id string) (Product, bool) {
	p, ok := catalogIndex[id]
	return p, ok
}

// SearchCatalog returns the products of filter.Category (all when empty)
// whose Vietnamese name, Chinese name or packaging contains filter.Query.
// Matching ignores case and diacritics. Catalog order is kept.
func SearchCatalog(filter CatalogFilter) []Product {
	query := utils.FoldText(filter.Query)
	out := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if filter.Category != "" && p.Category != Category(filter.Category) {
			continue
		}
		if query != "" &&
			!strings.Contains(utils.FoldText(p.NameVi), query) &&
			!strings.Contains(utils.FoldText(p.NameCn), query) &&
			!strings.Contains(utils.FoldText(p.Packaging), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
