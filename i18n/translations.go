package i18n

// translations maps canonical English terms to per-language strings.
// The table is populated here and never mutated, so it is safe to share
// across goroutines without locking.
var translations = map[string]map[string]string{
	// Planets
	"sun":     {"ru": "Солнце", "ko": "태양", "es": "Sol"},
	"moon":    {"ru": "Луна", "ko": "달", "es": "Luna"},
	"mercury": {"ru": "Меркурий", "ko": "수성", "es": "Mercurio"},
	"venus":   {"ru": "Венера", "ko": "금성", "es": "Venus"},
	"mars":    {"ru": "Марс", "ko": "화성", "es": "Marte"},
	"jupiter": {"ru": "Юпитер", "ko": "목성", "es": "Júpiter"},
	"saturn":  {"ru": "Сатурн", "ko": "토성", "es": "Saturno"},
	"uranus":  {"ru": "Уран", "ko": "천왕성", "es": "Urano"},
	"neptune": {"ru": "Нептун", "ko": "해왕성", "es": "Neptuno"},
	"pluto":   {"ru": "Плутон", "ko": "명왕성", "es": "Plutón"},
	// Extras
	"asc_node": {"ru": "Восходящий узел", "ko": "상승 노드", "es": "Nodo ascendente"},
	"chiron":   {"ru": "Хирон", "ko": "키론", "es": "Quirón"},
	"ceres":    {"ru": "Церера", "ko": "세레스", "es": "Ceres"},
	"pallas":   {"ru": "Паллада", "ko": "팔라스", "es": "Pallas"},
	"juno":     {"ru": "Юнона", "ko": "주노", "es": "Juno"},
	"vesta":    {"ru": "Веста", "ko": "베스타", "es": "Vesta"},
	// Signs
	"aries":       {"ru": "Овен", "ko": "양자리", "es": "Aries"},
	"taurus":      {"ru": "Телец", "ko": "황소자리", "es": "Tauro"},
	"gemini":      {"ru": "Близнецы", "ko": "쌍둥이자리", "es": "Géminis"},
	"cancer":      {"ru": "Рак", "ko": "게자리", "es": "Cáncer"},
	"leo":         {"ru": "Лев", "ko": "사자자리", "es": "Leo"},
	"virgo":       {"ru": "Дева", "ko": "처녀자리", "es": "Virgo"},
	"libra":       {"ru": "Весы", "ko": "천칭자리", "es": "Libra"},
	"scorpio":     {"ru": "Скорпион", "ko": "전갈자리", "es": "Escorpio"},
	"sagittarius": {"ru": "Стрелец", "ko": "사수자리", "es": "Sagitario"},
	"capricorn":   {"ru": "Козерог", "ko": "염소자리", "es": "Capricornio"},
	"aquarius":    {"ru": "Водолей", "ko": "물병자리", "es": "Acuario"},
	"pisces":      {"ru": "Рыбы", "ko": "물고기자리", "es": "Piscis"},
	// Aspects
	"conjunction": {"ru": "Соединение", "ko": "합", "es": "Conjunción"},
	"opposition":  {"ru": "Оппозиция", "ko": "충", "es": "Oposición"},
	"trine":       {"ru": "Трин", "ko": "삼각", "es": "Trígono"},
	"square":      {"ru": "Квадрат", "ko": "사각", "es": "Cuadratura"},
	"sextile":     {"ru": "Секстиль", "ko": "육각", "es": "Sextil"},
	"quincunx":    {"ru": "Квинконкс", "ko": "퀸컹크스", "es": "Quincuncio"},
	// Elements
	"fire":  {"ru": "Огонь", "ko": "불", "es": "Fuego"},
	"earth": {"ru": "Земля", "ko": "흙", "es": "Tierra"},
	"air":   {"ru": "Воздух", "ko": "공기", "es": "Aire"},
	"water": {"ru": "Вода", "ko": "물", "es": "Agua"},
	// Modalities
	"cardinal": {"ru": "Кардинальный", "ko": "활동궁", "es": "Cardinal"},
	"fixed":    {"ru": "Фиксированный", "ko": "고정궁", "es": "Fijo"},
	"mutable":  {"ru": "Мутабельный", "ko": "변통궁", "es": "Mutable"},
	// Polarities
	"positive": {"ru": "Позитивная", "ko": "양성", "es": "Positivo"},
	"negative": {"ru": "Негативная", "ko": "음성", "es": "Negativo"},
	// Vertices
	"asc": {"ru": "Асцендент", "ko": "상승점", "es": "Ascendente"},
	"dsc": {"ru": "Десцендент", "ko": "하강점", "es": "Descendente"},
	"mc":  {"ru": "Середина неба", "ko": "중천", "es": "Medio Cielo"},
	"ic":  {"ru": "Надир", "ko": "천저", "es": "Imum Coeli"},
	// Dignities
	"ruler":      {"ru": "Управитель", "ko": "지배성", "es": "Regente"},
	"detriment":  {"ru": "Изгнание", "ko": "손상", "es": "Detrimento"},
	"exaltation": {"ru": "Экзальтация", "ko": "고양", "es": "Exaltación"},
	"fall":       {"ru": "Падение", "ko": "쇠약", "es": "Caída"},
	// Report sections
	"house":                 {"ru": "Дом", "ko": "하우스", "es": "Casa"},
	"distribution":          {"ru": "Распределение", "ko": "분포", "es": "Distribución"},
	"quadrant":              {"ru": "Квадрант", "ko": "사분면", "es": "Cuadrante"},
	"hemisphere":            {"ru": "Полушарие", "ko": "반구", "es": "Hemisferio"},
	"basic_info":            {"ru": "Основная информация", "ko": "기본 정보", "es": "Información básica"},
	"element_distribution":  {"ru": "Распределение по стихиям", "ko": "원소 분포", "es": "Distribución de elementos"},
	"modality_distribution": {"ru": "Распределение по модальностям", "ko": "양상 분포", "es": "Distribución de modalidades"},
	"polarity_distribution": {"ru": "Распределение по полярностям", "ko": "극성 분포", "es": "Distribución de polaridades"},
	"celestial_bodies":      {"ru": "Небесные тела", "ko": "천체", "es": "Cuerpos celestes"},
	"houses":                {"ru": "Дома", "ko": "하우스", "es": "Casas"},
	"quadrants":             {"ru": "Квадранты", "ko": "사분면", "es": "Cuadrantes"},
	"hemispheres":           {"ru": "Полушария", "ko": "반구", "es": "Hemisferios"},
	"aspects":               {"ru": "Аспекты", "ko": "각", "es": "Aspectos"},
	"composite_aspects":     {"ru": "Композитные аспекты", "ko": "합성 각", "es": "Aspectos compuestos"},
	"cross_aspects":         {"ru": "Перекрестные аспекты", "ko": "교차 각", "es": "Aspectos cruzados"},
}
