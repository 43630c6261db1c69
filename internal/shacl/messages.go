package shacl

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys. Keys are looked up in the catalog; enum messages take the
// comma separated list of allowed values as their only argument.
const (
	msgShipperIDRequired     = "shipper.id.required"
	msgShipperIDFormat       = "shipper.id.format"
	msgShipperNameRequired   = "shipper.name.required"
	msgShipperNameLength     = "shipper.name.length"
	msgBusinessTypeEnum      = "shipper.businessType.enum"
	msgAvgMonthlyVolumeRange = "shipper.avgMonthlyVolume.range"
	msgBookingFrequencyRange = "shipper.bookingFrequency.range"
	msgChurnRiskRange        = "shipper.churnRisk.range"
	msgCustomerGradeEnum     = "shipper.customerGrade.enum"
	msgVIPShipperRule        = "shipper.rule.vip"
	msgChurnRiskShipperRule  = "shipper.rule.churnRisk"

	msgBookingIDRequired          = "booking.id.required"
	msgBookingIDFormat            = "booking.id.format"
	msgBookingDateRequired        = "booking.date.required"
	msgBookingDateFormat          = "booking.date.format"
	msgBookingQtyRequired         = "booking.qty.required"
	msgBookingQtyRange            = "booking.qty.range"
	msgContainerTypeRequired      = "booking.containerType.required"
	msgContainerTypeEnum          = "booking.containerType.enum"
	msgFreightRateRequired        = "booking.freightRate.required"
	msgFreightRateRange           = "booking.freightRate.range"
	msgBookingStatusRequired      = "booking.status.required"
	msgBookingStatusEnum          = "booking.status.enum"
	msgBookingShipperRequired     = "booking.shipper.required"
	msgBookingRouteRequired       = "booking.route.required"
	msgCancellationReasonRequired = "booking.cancellationReason.required"

	msgPredictedDateRequired     = "prediction.predictedDate.required"
	msgPredictedDateFormat       = "prediction.predictedDate.format"
	msgConfidenceRequired        = "prediction.confidence.required"
	msgConfidenceRange           = "prediction.confidence.range"
	msgPredictedVolumeRange      = "prediction.predictedVolume.range"
	msgModelVersionRequired      = "prediction.modelVersion.required"
	msgModelVersionFormat        = "prediction.modelVersion.format"
	msgPredictionDateRequired    = "prediction.predictionDate.required"
	msgPredictionDateFormat      = "prediction.predictionDate.format"
	msgPredictionShipperRequired = "prediction.shipper.required"
	msgPredictedAfterCreated     = "prediction.predictedDate.order"
	msgHighConfidencePrediction  = "prediction.rule.highConfidence"

	msgRouteCodeRequired       = "route.code.required"
	msgRouteCodeFormat         = "route.code.format"
	msgRouteNameRequired       = "route.name.required"
	msgRouteNameLength         = "route.name.length"
	msgOriginPortRequired      = "route.originPort.required"
	msgOriginPortFormat        = "route.originPort.format"
	msgDestinationPortRequired = "route.destinationPort.required"
	msgDestinationPortFormat   = "route.destinationPort.format"
	msgPortsMustDiffer         = "route.ports.differ"
	msgTransitTimeRequired     = "route.transitTime.required"
	msgTransitTimeRange        = "route.transitTime.range"
	msgBaseRateRequired        = "route.baseRate.required"
	msgBaseRateRange           = "route.baseRate.range"
)

var english = map[string]string{
	msgShipperIDRequired:     "shipper id is required",
	msgShipperIDFormat:       "shipper id must be 'SHP' followed by at least 3 digits (e.g. SHP001, SHP1234)",
	msgShipperNameRequired:   "shipper name is required",
	msgShipperNameLength:     "shipper name must be between 2 and 200 characters",
	msgBusinessTypeEnum:      "business type must be one of %s",
	msgAvgMonthlyVolumeRange: "average monthly volume must be between 0 and 100,000 TEU",
	msgBookingFrequencyRange: "booking frequency must be between 0 and 100",
	msgChurnRiskRange:        "churn risk must be between 0.0 and 1.0",
	msgCustomerGradeEnum:     "customer grade must be one of %s",
	msgVIPShipperRule:        "shippers averaging 500 TEU or more per month should be VIP grade",
	msgChurnRiskShipperRule:  "shippers with churn risk of 0.7 or more need special attention",

	msgBookingIDRequired:          "booking id is required",
	msgBookingIDFormat:            "booking id must be 'BK' followed by 10 digits (e.g. BK0000000001)",
	msgBookingDateRequired:        "booking date is required",
	msgBookingDateFormat:          "booking date is not a valid date",
	msgBookingQtyRequired:         "booking quantity is required",
	msgBookingQtyRange:            "booking quantity must be between 1 and 10,000 TEU",
	msgContainerTypeRequired:      "container type is required",
	msgContainerTypeEnum:          "container type must be one of %s",
	msgFreightRateRequired:        "freight rate is required",
	msgFreightRateRange:           "freight rate must be greater than 0 and at most 50,000 USD",
	msgBookingStatusRequired:      "booking status is required",
	msgBookingStatusEnum:          "booking status must be one of %s",
	msgBookingShipperRequired:     "booking must reference a shipper",
	msgBookingRouteRequired:       "booking must reference a route",
	msgCancellationReasonRequired: "a cancelled booking requires a cancellation reason",

	msgPredictedDateRequired:     "predicted booking date is required",
	msgPredictedDateFormat:       "predicted booking date is not a valid date",
	msgConfidenceRequired:        "confidence is required",
	msgConfidenceRange:           "confidence must be between 0.0 and 1.0",
	msgPredictedVolumeRange:      "predicted volume must be between 1 and 10,000 TEU",
	msgModelVersionRequired:      "model version is required",
	msgModelVersionFormat:        "model version must look like 'v1.0.0'",
	msgPredictionDateRequired:    "prediction date is required",
	msgPredictionDateFormat:      "prediction date is not a valid date",
	msgPredictionShipperRequired: "prediction must reference a shipper",
	msgPredictedAfterCreated:     "predicted booking date must be later than the prediction date",
	msgHighConfidencePrediction:  "high confidence prediction (0.85 or more); raising an alert is recommended",

	msgRouteCodeRequired:       "route code is required",
	msgRouteCodeFormat:         "route code must be 'RT' followed by 3 digits (e.g. RT001)",
	msgRouteNameRequired:       "route name is required",
	msgRouteNameLength:         "route name must be between 3 and 100 characters",
	msgOriginPortRequired:      "origin port is required",
	msgOriginPortFormat:        "origin port must be a 3 letter upper-case code (e.g. ICN, PUS)",
	msgDestinationPortRequired: "destination port is required",
	msgDestinationPortFormat:   "destination port must be a 3 letter upper-case code (e.g. LAX, SIN)",
	msgPortsMustDiffer:         "origin and destination ports must differ",
	msgTransitTimeRequired:     "transit time is required",
	msgTransitTimeRange:        "transit time must be between 1 and 90 days",
	msgBaseRateRequired:        "base rate is required",
	msgBaseRateRange:           "base rate must be greater than 0 and at most 50,000 USD",
}

var korean = map[string]string{
	msgShipperIDRequired:     "화주코드는 필수입니다",
	msgShipperIDFormat:       "화주코드는 'SHP'로 시작하고 3자리 이상 숫자여야 합니다 (예: SHP001, SHP1234)",
	msgShipperNameRequired:   "화주명은 필수입니다",
	msgShipperNameLength:     "화주명은 2~200자 사이여야 합니다",
	msgBusinessTypeEnum:      "업종은 %s 중 하나여야 합니다",
	msgAvgMonthlyVolumeRange: "월평균물량은 0~100,000 TEU 사이여야 합니다",
	msgBookingFrequencyRange: "부킹빈도는 0~100 사이여야 합니다",
	msgChurnRiskRange:        "이탈위험도는 0.0~1.0 사이여야 합니다",
	msgCustomerGradeEnum:     "고객등급은 %s 중 하나여야 합니다",
	msgVIPShipperRule:        "월평균 500 TEU 이상인 화주는 VIP 등급이어야 합니다",
	msgChurnRiskShipperRule:  "이탈위험도 0.7 이상인 화주는 특별 관리가 필요합니다",

	msgBookingIDRequired:          "부킹번호는 필수입니다",
	msgBookingIDFormat:            "부킹번호는 'BK'로 시작하고 10자리 숫자여야 합니다 (예: BK0000000001)",
	msgBookingDateRequired:        "부킹일자는 필수입니다",
	msgBookingDateFormat:          "부킹일자 형식이 올바르지 않습니다",
	msgBookingQtyRequired:         "부킹수량은 필수입니다",
	msgBookingQtyRange:            "부킹수량은 1~10,000 TEU 사이여야 합니다",
	msgContainerTypeRequired:      "컨테이너타입은 필수입니다",
	msgContainerTypeEnum:          "컨테이너타입은 %s 중 하나여야 합니다",
	msgFreightRateRequired:        "운임단가는 필수입니다",
	msgFreightRateRange:           "운임단가는 0보다 크고 50,000 USD 이하여야 합니다",
	msgBookingStatusRequired:      "부킹상태는 필수입니다",
	msgBookingStatusEnum:          "부킹상태는 %s 중 하나여야 합니다",
	msgBookingShipperRequired:     "부킹은 화주와 연결되어야 합니다",
	msgBookingRouteRequired:       "부킹은 항로와 연결되어야 합니다",
	msgCancellationReasonRequired: "부킹이 취소 상태일 때는 취소사유가 필수입니다",

	msgPredictedDateRequired:     "예상부킹일은 필수입니다",
	msgPredictedDateFormat:       "예상부킹일 형식이 올바르지 않습니다",
	msgConfidenceRequired:        "신뢰도는 필수입니다",
	msgConfidenceRange:           "신뢰도는 0.0~1.0 사이여야 합니다",
	msgPredictedVolumeRange:      "예상물량은 1~10,000 TEU 사이여야 합니다",
	msgModelVersionRequired:      "모델버전은 필수입니다",
	msgModelVersionFormat:        "모델버전은 'v1.0.0' 형식이어야 합니다",
	msgPredictionDateRequired:    "예측생성일은 필수입니다",
	msgPredictionDateFormat:      "예측생성일 형식이 올바르지 않습니다",
	msgPredictionShipperRequired: "예측은 화주와 연결되어야 합니다",
	msgPredictedAfterCreated:     "예상부킹일은 예측생성일보다 미래여야 합니다",
	msgHighConfidencePrediction:  "신뢰도 0.85 이상인 고신뢰도 예측입니다. 알림 생성을 권장합니다",

	msgRouteCodeRequired:       "항로코드는 필수입니다",
	msgRouteCodeFormat:         "항로코드는 'RT'로 시작하고 3자리 숫자여야 합니다 (예: RT001)",
	msgRouteNameRequired:       "항로명은 필수입니다",
	msgRouteNameLength:         "항로명은 3~100자 사이여야 합니다",
	msgOriginPortRequired:      "출발항은 필수입니다",
	msgOriginPortFormat:        "출발항은 3자리 대문자 코드여야 합니다 (예: ICN, PUS)",
	msgDestinationPortRequired: "도착항은 필수입니다",
	msgDestinationPortFormat:   "도착항은 3자리 대문자 코드여야 합니다 (예: LAX, SIN)",
	msgPortsMustDiffer:         "출발항과 도착항은 달라야 합니다",
	msgTransitTimeRequired:     "운항소요일은 필수입니다",
	msgTransitTimeRange:        "운항소요일은 1~90일 사이여야 합니다",
	msgBaseRateRequired:        "기본운임은 필수입니다",
	msgBaseRateRange:           "기본운임은 0보다 크고 50,000 USD 이하여야 합니다",
}

var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range english {
		if err := b.SetString(language.English, key, msg); err != nil {
			panic(err)
		}
	}
	for key, msg := range korean {
		if err := b.SetString(language.Korean, key, msg); err != nil {
			panic(err)
		}
	}
	return b
}

func joined(values []string) string {
	return strings.Join(values, ", ")
}
