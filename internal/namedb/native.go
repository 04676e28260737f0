package namedb

// Affinity tags used by the native-Korean name pool. The set is closed;
// selector scoring counts overlap between these tags and a request's
// preferred tags.
const (
	TagBright  = "밝음"
	TagCalm    = "차분"
	TagWarm    = "따뜻"
	TagStrong  = "강인"
	TagWise    = "지혜"
	TagRefined = "고급"
	TagNature  = "자연"
	TagHopeful = "희망"
	TagClear   = "맑음"
	TagLively  = "활기"
)

// NativeNameEntry is one curated native-Korean given name.
type NativeNameEntry struct {
	Name    string
	Meaning string
	Tags    []string
}

// femaleLeaningNames lists pool entries that read strongly feminine.
// They are filtered out for male requests when enough names remain.
var femaleLeaningNames = map[string]struct{}{
	"꽃님": {}, "꽃봄": {}, "나래": {}, "나린": {}, "다래": {},
	"다솜": {}, "다소니": {}, "다은": {}, "단아": {}, "달래": {},
	"도란": {}, "보라": {}, "보미": {}, "봄이": {}, "빛나": {},
	"새라": {}, "서린": {}, "소담": {}, "소라": {}, "아라": {},
	"아리": {}, "아림": {}, "예리": {}, "주리": {}, "초롱": {},
	"티나": {}, "하나": {}, "해나": {}, "해님": {}, "혜윰": {},
	"흰별": {},
}

// IsFemaleLeaning reports whether a pool name belongs to the fixed
// female-leaning exclusion set.
func IsFemaleLeaning(name string) bool {
	_, ok := femaleLeaningNames[name]
	return ok
}

// NativeNames is the curated pool, sourced from the 나무위키 고유어 이름
// document. Immutable.
var NativeNames = []NativeNameEntry{
	{Name: "가람", Meaning: "강을 뜻하는 순한글 이름입니다.", Tags: []string{TagNature, TagLively}},
	{Name: "가온", Meaning: "세상의 중심, 가운데를 뜻합니다.", Tags: []string{TagCalm, TagRefined}},
	{Name: "가을", Meaning: "풍요와 결실의 계절을 담은 이름입니다.", Tags: []string{TagNature, TagCalm}},
	{Name: "겨울", Meaning: "고요하고 단단한 계절의 이미지를 담았습니다.", Tags: []string{TagCalm, TagStrong}},
	{Name: "고은", Meaning: "곱고 아름답다는 뜻을 담은 이름입니다.", Tags: []string{TagRefined, TagClear}},
	{Name: "고운", Meaning: "맑고 아름다운 모습을 뜻합니다.", Tags: []string{TagClear, TagWarm}},
	{Name: "구름", Meaning: "자유롭게 흐르는 구름의 이미지를 담았습니다.", Tags: []string{TagNature, TagCalm}},
	{Name: "그루", Meaning: "나무를 세는 단위로, 곧게 자람을 뜻합니다.", Tags: []string{TagNature, TagStrong}},
	{Name: "기쁨", Meaning: "삶의 기쁨과 행복을 그대로 담은 이름입니다.", Tags: []string{TagBright, TagHopeful}},
	{Name: "꽃님", Meaning: "꽃처럼 사랑스럽고 귀한 사람이라는 뜻입니다.", Tags: []string{TagWarm, TagBright}},
	{Name: "꽃봄", Meaning: "꽃피는 봄처럼 화사한 이미지를 담았습니다.", Tags: []string{TagBright, TagNature}},
	{Name: "나라", Meaning: "큰 세상과 넓은 뜻을 품으라는 의미입니다.", Tags: []string{TagHopeful, TagStrong}},
	{Name: "나래", Meaning: "날개의 옛말로, 높이 비상하라는 뜻입니다.", Tags: []string{TagLively, TagHopeful}},
	{Name: "나루", Meaning: "물가의 나루터처럼 이어주는 사람이라는 뜻입니다.", Tags: []string{TagNature, TagWarm}},
	{Name: "나린", Meaning: "하늘이 내린 소중한 존재라는 뜻입니다.", Tags: []string{TagRefined, TagWarm}},
	{Name: "나림", Meaning: "좋은 기운이 내린다는 뜻을 담았습니다.", Tags: []string{TagHopeful, TagCalm}},
	{Name: "나은", Meaning: "더 나은 사람, 더 나은 삶을 뜻합니다.", Tags: []string{TagHopeful, TagRefined}},
	{Name: "노을", Meaning: "해질녘의 따뜻한 빛을 뜻하는 이름입니다.", Tags: []string{TagWarm, TagBright}},
	{Name: "누리", Meaning: "세상, 온 세상을 뜻하는 순한글 이름입니다.", Tags: []string{TagHopeful, TagStrong}},
	{Name: "누림", Meaning: "좋은 것을 누리며 살아가라는 뜻입니다.", Tags: []string{TagHopeful, TagWarm}},
	{Name: "눈꽃", Meaning: "눈처럼 맑고 꽃처럼 고운 이미지를 담았습니다.", Tags: []string{TagClear, TagNature}},
	{Name: "늘봄", Meaning: "언제나 봄처럼 따뜻하고 환하라는 뜻입니다.", Tags: []string{TagWarm, TagBright}},
	{Name: "늘빛", Meaning: "항상 빛나는 사람이라는 의미를 담았습니다.", Tags: []string{TagBright, TagHopeful}},
	{Name: "늘찬", Meaning: "늘 가득 차고 풍성하라는 뜻입니다.", Tags: []string{TagStrong, TagHopeful}},
	{Name: "다래", Meaning: "다래 열매처럼 건강하고 알찬 삶을 뜻합니다.", Tags: []string{TagNature, TagLively}},
	{Name: "다솜", Meaning: "사랑을 뜻하는 옛말에서 온 이름입니다.", Tags: []string{TagWarm, TagRefined}},
	{Name: "다소니", Meaning: "사랑하는 사람이라는 뜻입니다.", Tags: []string{TagWarm, TagBright}},
	{Name: "다온", Meaning: "좋은 일이 다 온다는 뜻입니다.", Tags: []string{TagHopeful, TagBright}},
	{Name: "다올", Meaning: "좋은 일이 다 올 것이라는 뜻입니다.", Tags: []string{TagHopeful, TagLively}},
	{Name: "다은", Meaning: "다정하고 은은한 기품을 담은 이름입니다.", Tags: []string{TagRefined, TagWarm}},
	{Name: "단비", Meaning: "가뭄 끝에 내리는 반가운 비를 뜻합니다.", Tags: []string{TagHopeful, TagNature}},
	{Name: "단아", Meaning: "단정하고 아담한 아름다움을 뜻합니다.", Tags: []string{TagRefined, TagCalm}},
	{Name: "달래", Meaning: "달래다에서 온 말로, 위로와 따뜻함을 뜻합니다.", Tags: []string{TagWarm, TagCalm}},
	{Name: "달빛", Meaning: "달의 은은한 빛처럼 맑고 고운 이미지를 담았습니다.", Tags: []string{TagCalm, TagClear}},
	{Name: "도담", Meaning: "야무지고 탐스럽게 잘 자란다는 뜻입니다.", Tags: []string{TagStrong, TagHopeful}},
	{Name: "도란", Meaning: "도란도란 정답고 따뜻한 분위기를 뜻합니다.", Tags: []string{TagWarm, TagCalm}},
	{Name: "도운", Meaning: "도움이 되는 사람이라는 의미를 담았습니다.", Tags: []string{TagWarm, TagWise}},
	{Name: "도움", Meaning: "다른 이에게 힘이 되는 사람이라는 뜻입니다.", Tags: []string{TagWarm, TagHopeful}},
	{Name: "두루", Meaning: "두루두루 넓고 고르게 품는다는 뜻입니다.", Tags: []string{TagCalm, TagWise}},
	{Name: "두리", Meaning: "둘레처럼 넓게 감싸 안는다는 뜻입니다.", Tags: []string{TagWarm, TagCalm}},
	{Name: "라온", Meaning: "즐거운이라는 옛말에서 온 이름입니다.", Tags: []string{TagBright, TagLively}},
	{Name: "로다", Meaning: "기다리던 존재가 바로 너라는 의미를 담았습니다.", Tags: []string{TagHopeful, TagRefined}},
	{Name: "로운", Meaning: "이롭고 도움이 되는 사람이라는 뜻입니다.", Tags: []string{TagWise, TagHopeful}},
	{Name: "루다", Meaning: "이루다에서 온 이름으로 성취를 뜻합니다.", Tags: []string{TagStrong, TagLively}},
	{Name: "루리", Meaning: "이루리라는 다짐을 담은 이름입니다.", Tags: []string{TagHopeful, TagLively}},
	{Name: "마루", Meaning: "정상, 으뜸을 뜻하는 순한글 이름입니다.", Tags: []string{TagStrong, TagRefined}},
	{Name: "마음", Meaning: "진심과 따뜻한 마음을 담은 이름입니다.", Tags: []string{TagWarm, TagCalm}},
	{Name: "맑음", Meaning: "맑고 깨끗한 기운을 뜻합니다.", Tags: []string{TagClear, TagBright}},
	{Name: "미리내", Meaning: "은하수를 뜻하는 순한글 이름입니다.", Tags: []string{TagRefined, TagClear}},
	{Name: "미르", Meaning: "용을 뜻하는 순한글 이름입니다.", Tags: []string{TagStrong, TagRefined}},
	{Name: "믿음", Meaning: "신뢰와 굳은 마음을 뜻하는 이름입니다.", Tags: []string{TagStrong, TagWarm}},
	{Name: "바다", Meaning: "넓고 깊은 바다의 이미지를 담았습니다.", Tags: []string{TagNature, TagStrong}},
	{Name: "바람", Meaning: "자유롭게 흐르는 바람, 또는 소망을 뜻합니다.", Tags: []string{TagNature, TagLively}},
	{Name: "바름", Meaning: "바르고 곧은 삶을 뜻합니다.", Tags: []string{TagStrong, TagWise}},
	{Name: "반디", Meaning: "반딧불처럼 작은 빛을 내는 존재라는 뜻입니다.", Tags: []string{TagBright, TagHopeful}},
	{Name: "벼리", Meaning: "큰 줄기, 중심이 되는 원칙을 뜻합니다.", Tags: []string{TagWise, TagStrong}},
	{Name: "별빛", Meaning: "별처럼 맑고 반짝이는 빛을 뜻합니다.", Tags: []string{TagBright, TagClear}},
	{Name: "보담", Meaning: "보다 더 낫고 귀하다는 의미입니다.", Tags: []string{TagRefined, TagHopeful}},
	{Name: "보라", Meaning: "보랏빛처럼 고운 색감을 담은 이름입니다.", Tags: []string{TagRefined, TagBright}},
	{Name: "보람", Meaning: "값지고 뜻깊은 결실을 뜻합니다.", Tags: []string{TagHopeful, TagWise}},
	{Name: "보미", Meaning: "봄처럼 따뜻하고 아름다운 사람이라는 뜻입니다.", Tags: []string{TagWarm, TagBright}},
	{Name: "봄이", Meaning: "봄의 생기와 따뜻함을 담은 이름입니다.", Tags: []string{TagBright, TagWarm}},
	{Name: "봄해", Meaning: "봄 햇살처럼 밝고 포근한 기운을 뜻합니다.", Tags: []string{TagBright, TagWarm}},
	{Name: "빛나", Meaning: "환하게 빛나는 사람이라는 뜻입니다.", Tags: []string{TagBright, TagHopeful}},
	{Name: "빛가람", Meaning: "빛나는 강이라는 뜻의 순한글 이름입니다.", Tags: []string{TagBright, TagNature}},
	{Name: "빛내리", Meaning: "빛이 내려온 듯한 맑은 이미지를 담았습니다.", Tags: []string{TagBright, TagClear}},
	{Name: "사랑", Meaning: "사랑의 마음을 담은 이름입니다.", Tags: []string{TagWarm, TagHopeful}},
	{Name: "산들", Meaning: "산들바람처럼 부드럽고 상쾌한 느낌입니다.", Tags: []string{TagNature, TagCalm}},
	{Name: "새결", Meaning: "새로운 물결처럼 신선한 시작을 뜻합니다.", Tags: []string{TagLively, TagHopeful}},
	{Name: "새길", Meaning: "새로운 길을 열어간다는 의미를 담았습니다.", Tags: []string{TagStrong, TagLively}},
	{Name: "새롬", Meaning: "새롭고 맑은 기운을 뜻하는 이름입니다.", Tags: []string{TagClear, TagHopeful}},
	{Name: "새론", Meaning: "새로운 사람, 새로운 시작을 뜻합니다.", Tags: []string{TagLively, TagHopeful}},
	{Name: "샛별", Meaning: "새벽하늘에 가장 먼저 빛나는 별을 뜻합니다.", Tags: []string{TagBright, TagHopeful}},
	{Name: "서린", Meaning: "이슬이 맺힌 듯 맑고 고운 느낌을 담았습니다.", Tags: []string{TagClear, TagCalm}},
	{Name: "서림", Meaning: "옅게 서려 있는 운치와 깊이를 뜻합니다.", Tags: []string{TagCalm, TagRefined}},
	{Name: "세움", Meaning: "스스로를 세우고 성장하라는 뜻입니다.", Tags: []string{TagStrong, TagWise}},
	{Name: "세찬", Meaning: "힘차고 강한 기세를 뜻하는 이름입니다.", Tags: []string{TagStrong, TagLively}},
	{Name: "소담", Meaning: "아담하고 탐스러운 모습을 뜻합니다.", Tags: []string{TagWarm, TagRefined}},
	{Name: "소라", Meaning: "푸른 바다와 조개를 떠올리게 하는 이름입니다.", Tags: []string{TagNature, TagClear}},
	{Name: "소리", Meaning: "맑은 울림과 표현력을 담은 이름입니다.", Tags: []string{TagLively, TagBright}},
	{Name: "소망", Meaning: "희망과 바람을 담은 이름입니다.", Tags: []string{TagHopeful, TagWarm}},
	{Name: "솔비", Meaning: "소나무와 비의 맑은 조합을 담았습니다.", Tags: []string{TagNature, TagClear}},
	{Name: "솔잎", Meaning: "늘 푸른 솔잎처럼 변치 않는 기운을 뜻합니다.", Tags: []string{TagNature, TagStrong}},
	{Name: "슬기", Meaning: "총명한 지혜를 뜻하는 이름입니다.", Tags: []string{TagWise, TagRefined}},
	{Name: "슬비", Meaning: "조용히 내리는 비처럼 차분한 기운입니다.", Tags: []string{TagCalm, TagNature}},
	{Name: "아라", Meaning: "넓은 바다를 뜻하는 옛말 계열 이름입니다.", Tags: []string{TagNature, TagRefined}},
	{Name: "아람", Meaning: "탐스럽게 익은 열매를 뜻합니다.", Tags: []string{TagHopeful, TagNature}},
	{Name: "아리", Meaning: "아름답고 맑은 느낌을 담은 이름입니다.", Tags: []string{TagClear, TagRefined}},
	{Name: "아리수", Meaning: "한강의 옛 이름으로 맑은 물의 이미지를 담았습니다.", Tags: []string{TagNature, TagClear}},
	{Name: "아림", Meaning: "맑고 아름다운 울림을 뜻하는 이름입니다.", Tags: []string{TagClear, TagRefined}},
	{Name: "아진", Meaning: "차근차근 앞으로 나아간다는 의미를 담았습니다.", Tags: []string{TagStrong, TagWise}},
	{Name: "어진", Meaning: "어질고 바른 사람을 뜻하는 이름입니다.", Tags: []string{TagWise, TagWarm}},
	{Name: "여울", Meaning: "물살이 빠르게 흐르는 여울을 뜻합니다.", Tags: []string{TagNature, TagLively}},
	{Name: "열매", Meaning: "성장 끝의 결실과 풍요를 뜻합니다.", Tags: []string{TagHopeful, TagNature}},
	{Name: "윤슬", Meaning: "햇빛이나 달빛이 물결에 반짝이는 모습을 뜻합니다.", Tags: []string{TagClear, TagRefined}},
	{Name: "으뜸", Meaning: "가장 뛰어남, 최고를 뜻하는 이름입니다.", Tags: []string{TagStrong, TagRefined}},
	{Name: "이룸", Meaning: "목표를 이루고 완성한다는 뜻입니다.", Tags: []string{TagStrong, TagHopeful}},
	{Name: "이든", Meaning: "바르고 든든하게 자라라는 뜻입니다.", Tags: []string{TagStrong, TagWise}},
	{Name: "이레", Meaning: "일곱 날, 완성된 주기를 뜻하는 이름입니다.", Tags: []string{TagCalm, TagHopeful}},
	{Name: "이슬", Meaning: "새벽 이슬처럼 맑고 깨끗한 기운입니다.", Tags: []string{TagClear, TagCalm}},
	{Name: "잎새", Meaning: "새잎처럼 생기 있고 섬세한 이미지를 담았습니다.", Tags: []string{TagNature, TagLively}},
	{Name: "자람", Meaning: "건강하게 잘 자라라는 의미를 담았습니다.", Tags: []string{TagHopeful, TagStrong}},
	{Name: "잔디", Meaning: "푸르고 단단한 생명력을 뜻하는 이름입니다.", Tags: []string{TagNature, TagStrong}},
	{Name: "재찬", Meaning: "재능이 빛나고 찬란하라는 뜻을 담았습니다.", Tags: []string{TagLively, TagHopeful}},
	{Name: "제나", Meaning: "언제나 한결같음을 담은 이름입니다.", Tags: []string{TagCalm, TagRefined}},
	{Name: "조이", Meaning: "기쁨과 즐거움을 담은 이름입니다.", Tags: []string{TagBright, TagLively}},
	{Name: "종달", Meaning: "종달새처럼 밝고 경쾌한 이미지를 뜻합니다.", Tags: []string{TagBright, TagLively}},
	{Name: "주리", Meaning: "주변을 두루 살피고 보듬는 의미를 담았습니다.", Tags: []string{TagWarm, TagWise}},
	{Name: "지음", Meaning: "의미를 짓고 관계를 잇는다는 뜻입니다.", Tags: []string{TagWise, TagCalm}},
	{Name: "진솔", Meaning: "진실하고 솔직한 마음을 뜻합니다.", Tags: []string{TagWise, TagWarm}},
	{Name: "찬들", Meaning: "가득 차고 풍요로운 들판을 떠올리게 합니다.", Tags: []string{TagNature, TagHopeful}},
	{Name: "찬솔", Meaning: "알차고 곧은 소나무 같은 기운을 뜻합니다.", Tags: []string{TagStrong, TagNature}},
	{Name: "초롱", Meaning: "맑게 반짝이는 빛을 뜻하는 이름입니다.", Tags: []string{TagBright, TagClear}},
	{Name: "큰별", Meaning: "크게 빛나는 별처럼 자라라는 뜻입니다.", Tags: []string{TagHopeful, TagBright}},
	{Name: "큰길", Meaning: "큰 뜻으로 바른 길을 가라는 의미입니다.", Tags: []string{TagStrong, TagWise}},
	{Name: "키움", Meaning: "성장과 발전을 돕는다는 의미를 담았습니다.", Tags: []string{TagHopeful, TagLively}},
	{Name: "토리", Meaning: "도토리에서 온 이름으로 단단한 성장을 뜻합니다.", Tags: []string{TagNature, TagStrong}},
	{Name: "파랑", Meaning: "맑고 시원한 파란빛의 이미지를 담았습니다.", Tags: []string{TagClear, TagLively}},
	{Name: "파란", Meaning: "푸르고 생동하는 기운을 뜻합니다.", Tags: []string{TagClear, TagLively}},
	{Name: "포근", Meaning: "따뜻하고 편안한 감정을 담은 이름입니다.", Tags: []string{TagWarm, TagCalm}},
	{Name: "푸르내", Meaning: "푸른 시냇물처럼 맑고 힘찬 이미지를 담았습니다.", Tags: []string{TagNature, TagLively}},
	{Name: "푸른", Meaning: "푸르고 싱그러운 생명력을 뜻합니다.", Tags: []string{TagNature, TagLively}},
	{Name: "푸름", Meaning: "짙은 푸른빛처럼 깊고 맑은 느낌입니다.", Tags: []string{TagClear, TagCalm}},
	{Name: "푸르미", Meaning: "푸르름을 의인화한 이름으로 생기를 뜻합니다.", Tags: []string{TagNature, TagLively}},
	{Name: "풀잎", Meaning: "작지만 강한 생명력을 가진 풀잎을 뜻합니다.", Tags: []string{TagNature, TagStrong}},
	{Name: "피리", Meaning: "맑은 소리의 악기처럼 고운 울림을 뜻합니다.", Tags: []string{TagClear, TagLively}},
	{Name: "하나", Meaning: "세상에 하나뿐인 소중함을 뜻합니다.", Tags: []string{TagRefined, TagWarm}},
	{Name: "하늘", Meaning: "크고 넓은 하늘처럼 큰 사람을 뜻합니다.", Tags: []string{TagNature, TagHopeful}},
	{Name: "하늬", Meaning: "서쪽에서 부는 바람을 뜻하는 순한글 이름입니다.", Tags: []string{TagNature, TagCalm}},
	{Name: "하루", Meaning: "매일 새롭게 빛나라는 의미를 담았습니다.", Tags: []string{TagBright, TagHopeful}},
	{Name: "하람", Meaning: "하늘이 내린 소중한 사람이라는 뜻입니다.", Tags: []string{TagRefined, TagWarm}},
	{Name: "하리", Meaning: "반드시 이루겠다는 다짐의 뜻을 담았습니다.", Tags: []string{TagStrong, TagLively}},
	{Name: "한결", Meaning: "처음과 끝이 한결같은 사람을 뜻합니다.", Tags: []string{TagCalm, TagWise}},
	{Name: "한길", Meaning: "한 길을 곧게 가는 우직함을 뜻합니다.", Tags: []string{TagStrong, TagWise}},
	{Name: "한빛", Meaning: "크고 밝은 빛을 뜻하는 이름입니다.", Tags: []string{TagBright, TagHopeful}},
	{Name: "한솔", Meaning: "큰 소나무처럼 곧고 푸르게 자라라는 뜻입니다.", Tags: []string{TagStrong, TagNature}},
	{Name: "한얼", Meaning: "큰 뜻과 넓은 정신을 담은 이름입니다.", Tags: []string{TagRefined, TagWise}},
	{Name: "한울", Meaning: "큰 하늘, 큰 우주를 뜻하는 이름입니다.", Tags: []string{TagNature, TagHopeful}},
	{Name: "해나", Meaning: "해처럼 밝게 자라라는 뜻을 담았습니다.", Tags: []string{TagBright, TagHopeful}},
	{Name: "해님", Meaning: "태양처럼 따뜻하고 환한 존재를 뜻합니다.", Tags: []string{TagBright, TagWarm}},
	{Name: "해봄", Meaning: "햇살과 봄의 따뜻함을 함께 담은 이름입니다.", Tags: []string{TagWarm, TagBright}},
	{Name: "해솔", Meaning: "해와 소나무의 밝고 곧은 이미지를 담았습니다.", Tags: []string{TagBright, TagStrong}},
	{Name: "햇살", Meaning: "햇빛처럼 포근하고 밝은 기운을 뜻합니다.", Tags: []string{TagBright, TagWarm}},
	{Name: "혜윰", Meaning: "생각을 깊이 헤아림을 뜻하는 순한글 이름입니다.", Tags: []string{TagWise, TagCalm}},
	{Name: "흰가람", Meaning: "맑고 깨끗한 강의 이미지를 담은 이름입니다.", Tags: []string{TagClear, TagNature}},
	{Name: "흰별", Meaning: "맑게 빛나는 흰 별의 이미지를 담았습니다.", Tags: []string{TagClear, TagBright}},
	{Name: "흰샘", Meaning: "맑은 샘물처럼 깨끗한 기운을 뜻합니다.", Tags: []string{TagClear, TagCalm}},
}
