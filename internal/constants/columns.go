package constants

// Токены кодов услуг, сравниваются по вхождению подстроки.
var (
	PrimaryTokens = []string{"BA"}

	SecondaryTokens = []string{"GA", "SC"}
)

// Заголовки исходного листа с записями. Сравнение идёт без пробелов и переносов.
const (
	ColEmployee    = "服務人員姓名"
	ColCase        = "個案姓名"
	ColServiceCode = "服務項目代碼"
	ColServiceDate = "服務日期(請輸入7碼)"
	ColStartHour   = "起始時段-小時(24小時制)"
	ColStartMinute = "起始時段-分鐘"
	ColEndHour     = "結束時段-小時(24小時制)"
	ColEndMinute   = "結束時段-分鐘"
	ColQuantity    = "數量\n(僅整數)"
)

// Заголовки листа замен.
const (
	ColCoverOriginal   = "原員工"
	ColCoverSubstitute = "代班員工"
	ColCoverCase       = "個案姓名"
	ColCoverDate       = "服務日期(民國7碼)"
)

var (
	RecordColumns = []string{
		ColEmployee, ColCase, ColServiceCode, ColServiceDate,
		ColStartHour, ColStartMinute, ColEndHour, ColEndMinute,
	}

	CoverColumns = []string{
		ColCoverOriginal, ColCoverSubstitute, ColCoverCase, ColCoverDate,
	}
)

// Листы итоговой книги.
const (
	SheetHours          = "BA時數表"
	SheetDaily          = "BA工時表"
	SheetSecondary      = "GA_SC表"
	SheetPrimaryCover   = "BA代班薪資轉交"
	SheetSecondaryCover = "GA_SC代班薪資轉交"

	ReportFilePrefix = "時數統計"
	DailyTotalLabel  = "合計"
)

var (
	HoursHeader = []string{"員工", "平日*1", "平日*1.34", "平日*1.67", "假日*2", "轉場", "BA+轉場薪資"}

	DailyHeaderHead = []string{"服務人員姓名", "個案姓名"}
	DailyHeaderTail = "總計"

	SecondaryHeader = []string{"員工", "次數", "喘息薪資"}

	PrimaryCoverHeader = []string{"員工", "代班", "平日*1", "平日*1.34", "平日*1.67", "假日*2", "轉場", "代班薪資"}

	SecondaryCoverHeader = []string{"員工", "代班", "次數", "薪資"}
)
