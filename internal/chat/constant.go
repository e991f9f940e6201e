package chat

// Command tokens. Each command has a primary token and a Korean alias,
// matched case-insensitively after trimming.
const (
	CmdStart    = "/start"
	CmdStartKo  = "/시작"
	CmdHelp     = "/help"
	CmdHelpKo   = "/도움말"
	CmdReset    = "/reset"
	CmdResetKo  = "/초기화"
	CmdStatus   = "/status"
	CmdStatusKo = "/상태"
)

// CommandPrefix marks control commands in the utterance stream.
const CommandPrefix = "/"

// Categories are the support program fields offered to users.
var Categories = []string{"기술", "금융", "경영", "창업", "인력", "수출", "내수", "기타"}

// Validation rejection messages, one fixed string per category.
const (
	MsgInvalidInput = "입력값이 올바르지 않습니다."
	MsgTooShort     = "메시지가 너무 짧습니다. 더 자세히 설명해주세요."
	MsgTooLong      = "메시지가 너무 깁니다. 1000자 이내로 작성해주세요."
	MsgUnsafeInput  = "안전하지 않은 내용이 포함되어 있습니다."
	MsgProfanity    = "부적절한 언어가 포함되어 있습니다."
	MsgValidInput   = "입력이 유효합니다."
)

// Fixed user-facing failure messages for engine call classifications.
const (
	MsgEngineDown        = "AI 시스템에 일시적인 문제가 발생했습니다. 잠시 후 다시 시도해주세요."
	MsgEngineTimeout     = "요청 시간이 초과되었습니다. 다시 시도해주세요."
	MsgEngineRateLimited = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
	MsgEngineGeneric     = "처리 중 오류가 발생했습니다. 다시 시도해주세요."
)

// Conversation texts.
const (
	MsgResetDone      = "세션이 초기화되었습니다. 다시 시작해주세요."
	MsgUnknownCommand = "알 수 없는 명령어입니다. /help를 입력하여 도움말을 확인하세요."
	MsgNoResults      = "죄송합니다. 현재 조건에 맞는 지원사업을 찾을 수 없습니다."
	MsgProcessed      = "처리되었습니다."
	MsgSelectCategory = "사업 분야를 선택해주세요:"

	// MsgProgramCountFmt takes the total number of programs found.
	MsgProgramCountFmt = "총 %d개의 지원사업을 찾았습니다. 더 자세한 정보가 필요하시면 말씀해주세요!"
)

// MsgWelcome greets new or restarted users.
const MsgWelcome = `🎉 KT AI 지원사업 추천 챗봇에 오신 것을 환영합니다!

📋 사용 방법:
1. 사업 분야를 알려주세요 (예: 기술, 금융, 경영 등)
2. 사업 내용을 간단히 설명해주세요
3. AI가 맞춤형 지원사업을 추천해드립니다!

💡 명령어:
/help - 도움말
/reset - 초기화
/status - 현재 상태

지금 시작해보세요! 🚀`

// MsgHelp documents commands and flow.
const MsgHelp = `📚 KT AI 지원사업 추천 챗봇 도움말

🎯 주요 기능:
• 맞춤형 지원사업 추천
• 사업분야별 지원사업 검색
• 지원사업 상세 정보 제공

💬 사용 방법:
1. 사업 분야 입력 (기술, 금융, 경영, 창업 등)
2. 사업 내용 설명
3. AI 추천 결과 확인

🔧 명령어:
/start - 처음부터 시작
/help - 이 도움말 보기
/reset - 대화 초기화
/status - 현재 상태 확인

❓ 문의사항이 있으시면 언제든 말씀해주세요!`
