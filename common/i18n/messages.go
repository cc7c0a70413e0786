package i18n

// Message keys double as the English text. Numbers are kept out of the format
// arguments because the printer groups digits per locale.
const (
	MsgPromptRequired       = "Please enter a prompt"
	MsgDimensionsOutOfRange = "Image dimensions must be between 256 and 2048 pixels"
	MsgImageTooLarge        = "Image is larger than 2MP, please reduce its size"
	MsgInvalidImageCount    = "Image count must be at least 1"
	MsgInvalidRequestBody   = "Invalid request body"
	MsgInvalidAPIKey        = "Invalid API key: %s"
	MsgAPIKeyNotFound       = "API key not found"
	MsgCredentialRequired   = "Please provide an API key or set TOGETHER_API_KEY on the server"
	MsgGenerationFailed     = "An error occurred: %s"

	MsgSetAPIKeyEnv    = "Please set the TOGETHER_API_KEY environment variable"
	MsgSetAPIKeyHowTo  = "How to set the API key:"
	MsgConsoleBanner   = "=== FLUX Image Generator ==="
	MsgConsoleQuitHint = "Type 'quit' or 'exit' to leave the program"
	MsgConsolePrompt   = "Enter a prompt to generate an image: "
	MsgGenerating      = "Generating image from prompt: %s"
	MsgImageReady      = "✅ Your image is ready!"
	MsgImageURL        = "🔗 URL: %s"
	MsgImageURLHint    = "💡 Copy this URL into your browser to view the image"
	MsgGenerateRetry   = "❌ Could not generate the image, please try again"
	MsgErrorDetail     = "❌ %s"
	MsgUnexpectedError = "❌ Unexpected error: %s"
	MsgFarewell        = "Thank you for using the service!"
	MsgQuitWord        = "quit"

	MsgServerBanner     = "=== FLUX Image Generator Web App ==="
	MsgServerListening  = "🌐 Open in your browser: %s"
	MsgServerKeyFound   = "📝 Server API key configured"
	MsgServerKeyMissing = "❌ No server API key found, requests must supply api_key"
)

var thai = map[string]string{
	MsgPromptRequired:       "กรุณาใส่ prompt",
	MsgDimensionsOutOfRange: "ขนาดรูปต้องอยู่ระหว่าง 256-2048 พิกเซล",
	MsgImageTooLarge:        "ขนาดรูปใหญ่เกิน 2MP กรุณาลดขนาด",
	MsgInvalidImageCount:    "จำนวนรูปต้องมีอย่างน้อย 1",
	MsgInvalidRequestBody:   "รูปแบบคำขอไม่ถูกต้อง",
	MsgInvalidAPIKey:        "API Key ไม่ถูกต้อง: %s",
	MsgAPIKeyNotFound:       "ไม่พบ API Key",
	MsgCredentialRequired:   "กรุณาใส่ API Key หรือตั้งค่า TOGETHER_API_KEY บนเซิร์ฟเวอร์",
	MsgGenerationFailed:     "เกิดข้อผิดพลาด: %s",

	MsgSetAPIKeyEnv:    "กรุณาตั้งค่า TOGETHER_API_KEY environment variable",
	MsgSetAPIKeyHowTo:  "วิธีตั้งค่า API key:",
	MsgConsoleBanner:   "=== FLUX Image Generator ===",
	MsgConsoleQuitHint: "พิมพ์ 'quit' หรือ 'exit' เพื่อออกจากโปรแกรม",
	MsgConsolePrompt:   "ใส่ prompt สำหรับสร้างรูป: ",
	MsgGenerating:      "กำลังสร้างรูปจาก prompt: %s",
	MsgImageReady:      "✅ รูปของคุณพร้อมแล้ว!",
	MsgImageURL:        "🔗 URL: %s",
	MsgImageURLHint:    "💡 คุณสามารถคัดลอก URL นี้ไปเปิดในเบราว์เซอร์เพื่อดูรูป",
	MsgGenerateRetry:   "❌ ไม่สามารถสร้างรูปได้ กรุณาลองใหม่",
	MsgErrorDetail:     "❌ %s",
	MsgUnexpectedError: "❌ เกิดข้อผิดพลาดไม่คาดคิด: %s",
	MsgFarewell:        "ขอบคุณที่ใช้บริการ!",
	MsgQuitWord:        "ออก",

	MsgServerBanner:     "=== FLUX Image Generator Web App ===",
	MsgServerListening:  "🌐 เปิดใช้งานที่: %s",
	MsgServerKeyFound:   "📝 API Key ถูกต้อง",
	MsgServerKeyMissing: "❌ ไม่พบ API Key",
}
