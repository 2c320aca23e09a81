package flow

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hawaco/booking-backend/internal/address"
	"github.com/hawaco/booking-backend/internal/dispatch"
	"github.com/hawaco/booking-backend/internal/models"
	"github.com/hawaco/booking-backend/internal/storage"
)

// SentinelStart is sent by the front-end when the chat page opens. It
// arms a fresh session at askName without producing any dialogue text
// (the greeting lives in the HTML).
const SentinelStart = "__start__"

const changeGovernorateCommand = "تغيير المحافظة"

// Engine runs the booking dialogue: one inbound message in, one reply
// and at most one step change out.
type Engine struct {
	store      storage.SessionStore
	checker    address.Checker // nil = address check disabled
	dispatcher *dispatch.Dispatcher
}

// NewEngine creates the dialogue engine. checker may be nil when no
// OpenAI key is configured; the dialogue then proceeds without
// normalization.
func NewEngine(store storage.SessionStore, checker address.Checker, dispatcher *dispatch.Dispatcher) *Engine {
	return &Engine{
		store:      store,
		checker:    checker,
		dispatcher: dispatcher,
	}
}

// HandleTurn processes one message for one session and returns the
// reply plus whether the booking is complete. Turns for the same
// session are serialized on the store's per-session lock.
func (e *Engine) HandleTurn(ctx context.Context, sessionID, message string) (reply string, done bool) {
	release := e.store.Acquire(sessionID)
	defer release()

	session := e.store.GetOrCreate(sessionID)
	text := strings.TrimSpace(message)

	if text == SentinelStart {
		session.Step = models.StepAskName
		return "", false
	}

	if session.Step == "" {
		session.Step = models.StepAskName
	}

	if session.Step == models.StepFinished {
		return "طلبك مسجّل بالفعل ✔️\n" +
			"فريق المبيعات هيتم التواصل معاك خلال 24 ساعة عمل.", true
	}

	switch session.Step {
	case models.StepAskName:
		if !IsValidFullName(text) {
			reply = "من فضلك اكتب اسمك *الثلاثي* (الاسم + اسم الأب + اسم العائلة).\n" +
				"مثال: أحمد محمد علي."
			break
		}
		session.Data.Name = text
		session.Step = models.StepAskAge
		reply = fmt.Sprintf("تشرفنا يا %s 🙏\nكام سنك؟", text)

	case models.StepAskAge:
		session.Data.Age = text
		session.Step = models.StepAskPhone
		reply = "تمام 👌\nاكتب رقم الموبايل للتواصل."

	case models.StepAskPhone:
		session.Data.Phone = text
		session.Step = models.StepAskWhatsapp
		reply = "تمام ✔️\nلو واتساب نفس الرقم اكتب (نفس الرقم)\nولو مختلف اكتبه."

	case models.StepAskWhatsapp:
		if IsSameNumberPhrase(text) {
			session.Data.Whatsapp = session.Data.Phone
		} else {
			session.Data.Whatsapp = text
		}
		session.Step = models.StepAskGovernorate
		reply = "تمام.\nاكتب *المحافظة* (مثال: الجيزة – القاهرة – الإسكندرية)."

	case models.StepAskGovernorate:
		session.Data.Governorate = text
		session.Step = models.StepAskDistrict
		reply = "تمام 👌\nاكتب اسم *الحي أو المنطقة* (مثال: الهرم – شبرا – سموحة).\n" +
			"ولو لقيت إن المحافظة اللي كتبتها غلط بعدين، اكتب: (تغيير المحافظة)."

	case models.StepAskDistrict:
		reply = e.handleDistrict(ctx, session, text)

	case models.StepAskBike:
		if !IsAllowedBike(text) {
			reply = "الموتسيكل اللي كتبته مش من أصناف أبو حوا ❌\n" +
				"اختار نوع من: دايون – هوجان – Zontes – CMG Tiger – بنلي – Keeway – Vigory.\n" +
				"اكتب النوع تاني."
			break
		}
		session.Data.BikeModel = text
		session.Step = models.StepAskPayment
		reply = "تمام ✔️\nطريقة الشراء: كاش ولا قسط؟"

	case models.StepAskPayment:
		session.Data.PaymentMethod = text
		if IsInstallment(text) {
			session.Step = models.StepAskDownPayment
			reply = "تمام، نظام قسط 💳\nتحب تدفع *مقدم كام تقريبًا*؟ اكتب المبلغ بالجنيه."
		} else {
			session.Step = models.StepAskContactTime
			reply = "تمام.\nإمتى أنسب وقت نكلمك فيه؟"
		}

	case models.StepAskDownPayment:
		session.Data.DownPayment = text
		session.Step = models.StepAskContactTime
		reply = "تمام.\nإمتى أنسب وقت نكلمك فيه للتأكيد على الحجز؟"

	case models.StepAskContactTime:
		session.Data.ContactTime = text
		reply = e.finishBooking(ctx, session)
		done = true

	default:
		log.Printf("Unknown step %q for session %s - resetting", session.Step, session.ID)
		session.Step = models.StepAskName
		reply = "في حاجة مش واضحة… هنرجع من الأول.\n" +
			"من فضلك اكتب اسمك الثلاثي."
	}

	return reply, done
}

// handleDistrict stores the district, lets the address checker correct
// the pair, and holds the dialogue on an explicit mismatch verdict.
func (e *Engine) handleDistrict(ctx context.Context, session *models.Session, text string) string {
	if normalize(text) == normalize(changeGovernorateCommand) {
		session.Step = models.StepAskGovernorate
		return "اكتب المحافظة الصحيحة (مثال: الجيزة – القاهرة – الإسكندرية)."
	}

	session.Data.District = text

	var result *address.Result
	if e.checker != nil {
		result = e.checker.CheckAddress(ctx, session.Data.Governorate, session.Data.District)
	}

	// Normalized names replace the customer's spelling whatever the verdict
	if result != nil && result.NormalizedGovernorate != "" && result.NormalizedDistrict != "" {
		session.Data.Governorate = result.NormalizedGovernorate
		session.Data.District = result.NormalizedDistrict
	}

	if result != nil && result.IsMatch != nil && !*result.IsMatch {
		note := result.Note
		if note == "" {
			note = "من فضلك راجع العنوان."
		}
		return fmt.Sprintf(
			"فيه تعارض بين المحافظة والحي حسب قاعدة البيانات:\n"+
				"المحافظة: %s\n"+
				"الحي: %s\n"+
				"ملاحظة: %s\n\n"+
				"لو المحافظة غلط اكتب: (تغيير المحافظة)\n"+
				"لو الحي غلط، اكتب الحي الصحيح تاني تابع للمحافظة.",
			session.Data.Governorate, session.Data.District, note)
	}

	session.Step = models.StepAskBike
	return "جميل.\n" +
		"دلوقتي اكتب نوع الموتسيكل اللي عايز تحجزه 🏍️\n" +
		"◀️ الحجز متاح لأصناف أبو حوا فقط (دايون – هوجان – Zontes – CMG Tiger – بنلي – Keeway – Vigory...)."
}

// finishBooking builds the record, dispatches it and returns the
// summary with the delivery outcome appended.
func (e *Engine) finishBooking(ctx context.Context, session *models.Session) string {
	record := models.NewBookingRecord(session.ID, session.Data)

	reply := buildSummary(record) + "جارٍ تسجيل الطلب… لحظة واحدة ⏳"

	if err := e.dispatcher.Dispatch(ctx, record); err != nil {
		log.Printf("WEBHOOK ERROR: %v", err)
		reply += "\n\n⚠️ حصلت مشكلة أثناء الإرسال.\n" +
			"لكن بياناتك محفوظة وهنتابع يدويًا."
	} else {
		reply += "\n\n🎉 تم إرسال الطلب بنجاح.\n" +
			"فريق المبيعات هيتم التواصل معاك خلال 24 ساعة عمل."
	}

	session.Step = models.StepFinished
	return reply
}

func buildSummary(record *models.BookingRecord) string {
	var b strings.Builder

	b.WriteString("📋 **ملخص الحجز:**\n")
	fmt.Fprintf(&b, "• رقم الحجز: %s\n", record.BookingRef)
	fmt.Fprintf(&b, "• الاسم: %s\n", record.Name)
	fmt.Fprintf(&b, "• السن: %s\n", record.Age)
	fmt.Fprintf(&b, "• الموبايل: %s\n", record.Phone)
	fmt.Fprintf(&b, "• واتساب: %s\n", record.Whatsapp)
	fmt.Fprintf(&b, "• المحافظة: %s\n", record.Governorate)
	fmt.Fprintf(&b, "• الحي/المنطقة: %s\n", record.District)
	fmt.Fprintf(&b, "• الموتسيكل: %s\n", record.BikeModel)
	fmt.Fprintf(&b, "• طريقة الشراء: %s\n", record.PaymentMethod)

	if record.DownPayment != "" {
		fmt.Fprintf(&b, "• المقدم المتوقع: %s\n", record.DownPayment)
	}

	fmt.Fprintf(&b, "• وقت التواصل المناسب: %s\n\n", record.ContactTime)

	return b.String()
}
