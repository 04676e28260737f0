// Package namedb holds the immutable reference tables backing name
// composition: the hanja stroke/element table, the surname stroke table,
// and the curated native-Korean name pool.
package namedb

// HanjaEntry describes one hanja character used in Korean given names,
// with its Korean reading, curated meaning, canonical stroke count, and
// five-phase element tag.
type HanjaEntry struct {
	Character string
	Reading   string
	Meaning   string
	Strokes   int
	Element   string
}

// Five-phase element tags used across the hanja table.
const (
	ElementWood  = "木"
	ElementFire  = "火"
	ElementEarth = "土"
	ElementMetal = "金"
	ElementWater = "水"
)

// HanjaEntries is the ordered reference table. Order is load-bearing:
// fallback candidate synthesis cycles through this slice by index, so
// entries must not be reordered casually.
var HanjaEntries = []HanjaEntry{
	{Character: "佳", Reading: "가", Meaning: "아름다울 가", Strokes: 8, Element: ElementWood},
	{Character: "康", Reading: "강", Meaning: "편안할 강", Strokes: 11, Element: ElementWood},
	{Character: "建", Reading: "건", Meaning: "세울 건", Strokes: 9, Element: ElementWood},
	{Character: "健", Reading: "건", Meaning: "굳셀 건", Strokes: 11, Element: ElementWood},
	{Character: "傑", Reading: "걸", Meaning: "뛰어날 걸", Strokes: 12, Element: ElementWood},
	{Character: "京", Reading: "경", Meaning: "서울 경", Strokes: 8, Element: ElementEarth},
	{Character: "敬", Reading: "경", Meaning: "공경할 경", Strokes: 13, Element: ElementEarth},
	{Character: "慶", Reading: "경", Meaning: "경사 경", Strokes: 15, Element: ElementFire},
	{Character: "高", Reading: "고", Meaning: "높을 고", Strokes: 10, Element: ElementFire},
	{Character: "光", Reading: "광", Meaning: "빛 광", Strokes: 6, Element: ElementFire},
	{Character: "奎", Reading: "규", Meaning: "별 규", Strokes: 9, Element: ElementEarth},
	{Character: "根", Reading: "근", Meaning: "뿌리 근", Strokes: 10, Element: ElementWood},
	{Character: "金", Reading: "금", Meaning: "쇠 금", Strokes: 8, Element: ElementMetal},
	{Character: "起", Reading: "기", Meaning: "일어날 기", Strokes: 10, Element: ElementFire},
	{Character: "基", Reading: "기", Meaning: "터 기", Strokes: 11, Element: ElementEarth},
	{Character: "吉", Reading: "길", Meaning: "길할 길", Strokes: 6, Element: ElementWater},
	{Character: "娜", Reading: "나", Meaning: "아리따울 나", Strokes: 10, Element: ElementFire},
	{Character: "南", Reading: "남", Meaning: "남녘 남", Strokes: 9, Element: ElementFire},
	{Character: "多", Reading: "다", Meaning: "많을 다", Strokes: 6, Element: ElementWater},
	{Character: "丹", Reading: "단", Meaning: "붉을 단", Strokes: 4, Element: ElementFire},
	{Character: "大", Reading: "대", Meaning: "큰 대", Strokes: 3, Element: ElementWood},
	{Character: "德", Reading: "덕", Meaning: "큰 덕", Strokes: 15, Element: ElementFire},
	{Character: "桃", Reading: "도", Meaning: "복숭아 도", Strokes: 10, Element: ElementWood},
	{Character: "東", Reading: "동", Meaning: "동녘 동", Strokes: 8, Element: ElementWood},
	{Character: "桐", Reading: "동", Meaning: "오동나무 동", Strokes: 10, Element: ElementWood},
	{Character: "斗", Reading: "두", Meaning: "말 두", Strokes: 4, Element: ElementFire},
	{Character: "良", Reading: "량", Meaning: "어질 량", Strokes: 7, Element: ElementEarth},
	{Character: "玲", Reading: "령", Meaning: "옥소리 령", Strokes: 10, Element: ElementMetal},
	{Character: "倫", Reading: "륜", Meaning: "인륜 륜", Strokes: 10, Element: ElementWood},
	{Character: "利", Reading: "리", Meaning: "이로울 리", Strokes: 7, Element: ElementMetal},
	{Character: "林", Reading: "림", Meaning: "수풀 림", Strokes: 8, Element: ElementWood},
	{Character: "明", Reading: "명", Meaning: "밝을 명", Strokes: 8, Element: ElementFire},
	{Character: "武", Reading: "무", Meaning: "굳셀 무", Strokes: 8, Element: ElementMetal},
	{Character: "文", Reading: "문", Meaning: "글월 문", Strokes: 4, Element: ElementWood},
	{Character: "美", Reading: "미", Meaning: "아름다울 미", Strokes: 9, Element: ElementWater},
	{Character: "敏", Reading: "민", Meaning: "민첩할 민", Strokes: 11, Element: ElementWater},
	{Character: "民", Reading: "민", Meaning: "백성 민", Strokes: 5, Element: ElementFire},
	{Character: "珉", Reading: "민", Meaning: "옥돌 민", Strokes: 10, Element: ElementMetal},
	{Character: "旻", Reading: "민", Meaning: "하늘 민", Strokes: 8, Element: ElementFire},
	{Character: "拍", Reading: "박", Meaning: "칠 박", Strokes: 9, Element: ElementMetal},
	{Character: "培", Reading: "배", Meaning: "북돋울 배", Strokes: 11, Element: ElementEarth},
	{Character: "柏", Reading: "백", Meaning: "측백나무 백", Strokes: 9, Element: ElementWood},
	{Character: "炳", Reading: "병", Meaning: "빛날 병", Strokes: 9, Element: ElementFire},
	{Character: "寶", Reading: "보", Meaning: "보배 보", Strokes: 20, Element: ElementMetal},
	{Character: "福", Reading: "복", Meaning: "복 복", Strokes: 14, Element: ElementWater},
	{Character: "本", Reading: "본", Meaning: "근본 본", Strokes: 5, Element: ElementWood},
	{Character: "奉", Reading: "봉", Meaning: "받들 봉", Strokes: 8, Element: ElementWater},
	{Character: "富", Reading: "부", Meaning: "부유할 부", Strokes: 12, Element: ElementWater},
	{Character: "彬", Reading: "빈", Meaning: "빛날 빈", Strokes: 11, Element: ElementWood},
	{Character: "山", Reading: "산", Meaning: "뫼 산", Strokes: 3, Element: ElementEarth},
	{Character: "相", Reading: "상", Meaning: "서로 상", Strokes: 9, Element: ElementWood},
	{Character: "尙", Reading: "상", Meaning: "높일 상", Strokes: 8, Element: ElementMetal},
	{Character: "瑞", Reading: "서", Meaning: "상서로울 서", Strokes: 14, Element: ElementMetal},
	{Character: "書", Reading: "서", Meaning: "글 서", Strokes: 10, Element: ElementWood},
	{Character: "碩", Reading: "석", Meaning: "클 석", Strokes: 14, Element: ElementMetal},
	{Character: "善", Reading: "선", Meaning: "착할 선", Strokes: 12, Element: ElementWater},
	{Character: "宣", Reading: "선", Meaning: "베풀 선", Strokes: 9, Element: ElementMetal},
	{Character: "成", Reading: "성", Meaning: "이룰 성", Strokes: 7, Element: ElementFire},
	{Character: "星", Reading: "성", Meaning: "별 성", Strokes: 9, Element: ElementFire},
	{Character: "世", Reading: "세", Meaning: "인간 세", Strokes: 5, Element: ElementWater},
	{Character: "秀", Reading: "수", Meaning: "빼어날 수", Strokes: 7, Element: ElementWood},
	{Character: "洙", Reading: "수", Meaning: "물가 수", Strokes: 10, Element: ElementWater},
	{Character: "淑", Reading: "숙", Meaning: "맑을 숙", Strokes: 12, Element: ElementWater},
	{Character: "順", Reading: "순", Meaning: "순할 순", Strokes: 12, Element: ElementWater},
	{Character: "勝", Reading: "승", Meaning: "이길 승", Strokes: 12, Element: ElementEarth},
	{Character: "昇", Reading: "승", Meaning: "오를 승", Strokes: 8, Element: ElementFire},
	{Character: "始", Reading: "시", Meaning: "비로소 시", Strokes: 8, Element: ElementWater},
	{Character: "信", Reading: "신", Meaning: "믿을 신", Strokes: 9, Element: ElementMetal},
	{Character: "新", Reading: "신", Meaning: "새 신", Strokes: 13, Element: ElementMetal},
	{Character: "雅", Reading: "아", Meaning: "맑을 아", Strokes: 12, Element: ElementWood},
	{Character: "安", Reading: "안", Meaning: "편안 안", Strokes: 6, Element: ElementWood},
	{Character: "愛", Reading: "애", Meaning: "사랑 애", Strokes: 13, Element: ElementFire},
	{Character: "陽", Reading: "양", Meaning: "볕 양", Strokes: 12, Element: ElementEarth},
	{Character: "彦", Reading: "언", Meaning: "선비 언", Strokes: 9, Element: ElementWood},
	{Character: "然", Reading: "연", Meaning: "그럴 연", Strokes: 12, Element: ElementFire},
	{Character: "延", Reading: "연", Meaning: "늘일 연", Strokes: 7, Element: ElementEarth},
	{Character: "妍", Reading: "연", Meaning: "고울 연", Strokes: 7, Element: ElementWater},
	{Character: "永", Reading: "영", Meaning: "길 영", Strokes: 5, Element: ElementWater},
	{Character: "英", Reading: "영", Meaning: "꽃부리 영", Strokes: 9, Element: ElementWood},
	{Character: "榮", Reading: "영", Meaning: "영화 영", Strokes: 14, Element: ElementWood},
	{Character: "藝", Reading: "예", Meaning: "재주 예", Strokes: 19, Element: ElementWood},
	{Character: "五", Reading: "오", Meaning: "다섯 오", Strokes: 4, Element: ElementEarth},
	{Character: "玉", Reading: "옥", Meaning: "구슬 옥", Strokes: 5, Element: ElementMetal},
	{Character: "完", Reading: "완", Meaning: "완전할 완", Strokes: 7, Element: ElementWood},
	{Character: "王", Reading: "왕", Meaning: "임금 왕", Strokes: 4, Element: ElementMetal},
	{Character: "容", Reading: "용", Meaning: "얼굴 용", Strokes: 10, Element: ElementWood},
	{Character: "勇", Reading: "용", Meaning: "날랠 용", Strokes: 9, Element: ElementEarth},
	{Character: "宇", Reading: "우", Meaning: "집 우", Strokes: 6, Element: ElementWood},
	{Character: "雨", Reading: "우", Meaning: "비 우", Strokes: 8, Element: ElementWater},
	{Character: "旭", Reading: "욱", Meaning: "아침해 욱", Strokes: 6, Element: ElementFire},
	{Character: "雲", Reading: "운", Meaning: "구름 운", Strokes: 12, Element: ElementWater},
	{Character: "雄", Reading: "웅", Meaning: "수컷 웅", Strokes: 12, Element: ElementWater},
	{Character: "元", Reading: "원", Meaning: "으뜸 원", Strokes: 4, Element: ElementWood},
	{Character: "原", Reading: "원", Meaning: "언덕 원", Strokes: 10, Element: ElementEarth},
	{Character: "月", Reading: "월", Meaning: "달 월", Strokes: 4, Element: ElementWater},
	{Character: "裕", Reading: "유", Meaning: "넉넉할 유", Strokes: 13, Element: ElementMetal},
	{Character: "潤", Reading: "윤", Meaning: "윤택할 윤", Strokes: 16, Element: ElementWater},
	{Character: "銀", Reading: "은", Meaning: "은 은", Strokes: 14, Element: ElementMetal},
	{Character: "恩", Reading: "은", Meaning: "은혜 은", Strokes: 10, Element: ElementWater},
	{Character: "義", Reading: "의", Meaning: "옳을 의", Strokes: 13, Element: ElementWood},
	{Character: "仁", Reading: "인", Meaning: "어질 인", Strokes: 4, Element: ElementWood},
	{Character: "一", Reading: "일", Meaning: "한 일", Strokes: 1, Element: ElementWood},
	{Character: "日", Reading: "일", Meaning: "날 일", Strokes: 4, Element: ElementFire},
	{Character: "壯", Reading: "장", Meaning: "씩씩할 장", Strokes: 7, Element: ElementWood},
	{Character: "財", Reading: "재", Meaning: "재물 재", Strokes: 10, Element: ElementMetal},
	{Character: "在", Reading: "재", Meaning: "있을 재", Strokes: 6, Element: ElementEarth},
	{Character: "典", Reading: "전", Meaning: "법 전", Strokes: 8, Element: ElementMetal},
	{Character: "正", Reading: "정", Meaning: "바를 정", Strokes: 5, Element: ElementMetal},
	{Character: "貞", Reading: "정", Meaning: "곧을 정", Strokes: 9, Element: ElementMetal},
	{Character: "廷", Reading: "정", Meaning: "조정 정", Strokes: 7, Element: ElementWood},
	{Character: "濟", Reading: "제", Meaning: "건널 제", Strokes: 18, Element: ElementWater},
	{Character: "朝", Reading: "조", Meaning: "아침 조", Strokes: 12, Element: ElementWater},
	{Character: "宗", Reading: "종", Meaning: "마루 종", Strokes: 8, Element: ElementMetal},
	{Character: "柱", Reading: "주", Meaning: "기둥 주", Strokes: 9, Element: ElementWood},
	{Character: "珠", Reading: "주", Meaning: "구슬 주", Strokes: 11, Element: ElementMetal},
	{Character: "俊", Reading: "준", Meaning: "준걸 준", Strokes: 9, Element: ElementFire},
	{Character: "準", Reading: "준", Meaning: "준할 준", Strokes: 14, Element: ElementWater},
	{Character: "重", Reading: "중", Meaning: "무거울 중", Strokes: 9, Element: ElementEarth},
	{Character: "智", Reading: "지", Meaning: "지혜 지", Strokes: 12, Element: ElementFire},
	{Character: "志", Reading: "지", Meaning: "뜻 지", Strokes: 7, Element: ElementFire},
	{Character: "眞", Reading: "진", Meaning: "참 진", Strokes: 10, Element: ElementMetal},
	{Character: "進", Reading: "진", Meaning: "나아갈 진", Strokes: 15, Element: ElementFire},
	{Character: "燦", Reading: "찬", Meaning: "빛날 찬", Strokes: 17, Element: ElementFire},
	{Character: "昌", Reading: "창", Meaning: "창성할 창", Strokes: 8, Element: ElementFire},
	{Character: "采", Reading: "채", Meaning: "캘 채", Strokes: 8, Element: ElementWood},
	{Character: "天", Reading: "천", Meaning: "하늘 천", Strokes: 4, Element: ElementFire},
	{Character: "哲", Reading: "철", Meaning: "밝을 철", Strokes: 10, Element: ElementFire},
	{Character: "淸", Reading: "청", Meaning: "맑을 청", Strokes: 12, Element: ElementWater},
	{Character: "初", Reading: "초", Meaning: "처음 초", Strokes: 7, Element: ElementMetal},
	{Character: "春", Reading: "춘", Meaning: "봄 춘", Strokes: 9, Element: ElementFire},
	{Character: "忠", Reading: "충", Meaning: "충성 충", Strokes: 8, Element: ElementFire},
	{Character: "泰", Reading: "태", Meaning: "클 태", Strokes: 9, Element: ElementWater},
	{Character: "兌", Reading: "태", Meaning: "기쁠 태", Strokes: 7, Element: ElementMetal},
	{Character: "平", Reading: "평", Meaning: "평평할 평", Strokes: 5, Element: ElementWater},
	{Character: "豊", Reading: "풍", Meaning: "풍년 풍", Strokes: 13, Element: ElementWood},
	{Character: "弼", Reading: "필", Meaning: "도울 필", Strokes: 12, Element: ElementWood},
	{Character: "河", Reading: "하", Meaning: "물 하", Strokes: 9, Element: ElementWater},
	{Character: "夏", Reading: "하", Meaning: "여름 하", Strokes: 10, Element: ElementFire},
	{Character: "學", Reading: "학", Meaning: "배울 학", Strokes: 16, Element: ElementWater},
	{Character: "韓", Reading: "한", Meaning: "한국 한", Strokes: 17, Element: ElementWater},
	{Character: "海", Reading: "해", Meaning: "바다 해", Strokes: 11, Element: ElementWater},
	{Character: "幸", Reading: "행", Meaning: "다행 행", Strokes: 8, Element: ElementWood},
	{Character: "鄕", Reading: "향", Meaning: "시골 향", Strokes: 17, Element: ElementEarth},
	{Character: "賢", Reading: "현", Meaning: "어질 현", Strokes: 15, Element: ElementMetal},
	{Character: "炫", Reading: "현", Meaning: "밝을 현", Strokes: 9, Element: ElementFire},
	{Character: "亨", Reading: "형", Meaning: "형통할 형", Strokes: 7, Element: ElementFire},
	{Character: "浩", Reading: "호", Meaning: "넓을 호", Strokes: 11, Element: ElementWater},
	{Character: "昊", Reading: "호", Meaning: "하늘 호", Strokes: 8, Element: ElementFire},
	{Character: "洪", Reading: "홍", Meaning: "넓을 홍", Strokes: 10, Element: ElementWater},
	{Character: "和", Reading: "화", Meaning: "화할 화", Strokes: 8, Element: ElementWater},
	{Character: "煥", Reading: "환", Meaning: "빛날 환", Strokes: 13, Element: ElementFire},
	{Character: "皇", Reading: "황", Meaning: "임금 황", Strokes: 9, Element: ElementWater},
	{Character: "孝", Reading: "효", Meaning: "효도 효", Strokes: 7, Element: ElementWater},
	{Character: "厚", Reading: "후", Meaning: "두터울 후", Strokes: 9, Element: ElementWater},
	{Character: "勳", Reading: "훈", Meaning: "공 훈", Strokes: 16, Element: ElementFire},
	{Character: "輝", Reading: "휘", Meaning: "빛날 휘", Strokes: 15, Element: ElementFire},
	{Character: "希", Reading: "희", Meaning: "바랄 희", Strokes: 7, Element: ElementWood},
	{Character: "熙", Reading: "희", Meaning: "빛날 희", Strokes: 13, Element: ElementWater},
}

var hanjaByChar = buildHanjaIndex()

func buildHanjaIndex() map[rune]HanjaEntry {
	index := make(map[rune]HanjaEntry, len(HanjaEntries))
	for _, entry := range HanjaEntries {
		for _, r := range entry.Character {
			index[r] = entry
			break
		}
	}
	return index
}

// LookupHanja returns the reference entry for a single hanja character.
// A miss means numerology analysis is unavailable for that character;
// callers must not substitute zero strokes as if they were valid.
func LookupHanja(r rune) (HanjaEntry, bool) {
	entry, ok := hanjaByChar[r]
	return entry, ok
}
