package address

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Result is the model's verdict on a governorate/district pair. IsMatch
// is a pointer because only an explicit false should hold the dialogue;
// a missing verdict means the pair is accepted as-is.
type Result struct {
	NormalizedGovernorate string `json:"normalized_governorate"`
	NormalizedDistrict    string `json:"normalized_district"`
	IsMatch               *bool  `json:"is_match"`
	Note                  string `json:"note"`
}

// Checker normalizes and cross-checks a customer's governorate/district
// pair. A nil Result means no opinion and the dialogue proceeds as-is.
type Checker interface {
	CheckAddress(ctx context.Context, governorate, district string) *Result
}

// OpenAIChecker asks an OpenAI model to correct spelling and judge
// whether the district belongs to the governorate.
type OpenAIChecker struct {
	client *openai.Client
	model  string
}

// NewOpenAIChecker creates a checker backed by the OpenAI API.
func NewOpenAIChecker(apiKey, model string) *OpenAIChecker {
	return &OpenAIChecker{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

const promptTemplate = `
انت مساعد خبير فى عناوين جمهورية مصر العربية.
المطلوب:

- تستقبل محافظة وحي/منطقة كما كتبهم العميل.
- تصحح الأخطاء الإملائية البسيطة.
- تحدد هل الحي تابع فعلاً للمحافظة أم لا (حسب أفضل معرفة لديك).
- ترجع النتيجة فى JSON "سطر واحد" فقط بالشكل التالي (بدون أى كلام إضافى):

{"normalized_governorate": "اسم المحافظة بعد التصحيح", "normalized_district": "اسم الحي بعد التصحيح", "is_match": true أو false, "note": "توضيح قصير بالعربي"}

المحافظة: %s
الحي: %s
`

// CheckAddress sends the governorate/district pair to the model. Any
// failure, network or parse, returns nil so the booking keeps moving.
func (o *OpenAIChecker) CheckAddress(ctx context.Context, governorate, district string) *Result {
	prompt := fmt.Sprintf(promptTemplate, governorate, district)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("OPENAI ADDRESS CHECK ERROR: %v", err)
		return nil
	}
	if len(resp.Choices) == 0 {
		log.Printf("OPENAI ADDRESS CHECK ERROR: empty response")
		return nil
	}

	result, err := ParseResult(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("OPENAI ADDRESS CHECK ERROR: %v", err)
		return nil
	}
	return result
}

// ParseResult extracts the single-line JSON verdict from the model
// output. Models sometimes wrap the line in a Markdown code fence, so
// the fence is stripped before decoding.
func ParseResult(text string) (*Result, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response: %q", text)
	}

	var result Result
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("decoding address check response: %w", err)
	}
	return &result, nil
}
