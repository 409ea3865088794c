package i18n

var ruSectionTitles = map[string]string{
	"p1": "P1. О вас",
	"p2": "P2. Опыт цифрового потребления",
	"p3": "P3. Оценка восприятия",
	"p4": "P4. Личная концентрация и эмоциональное благополучие",
	"p5": "P5. Частота использования интернета",
	"p6": "P6. Обсуждение персонализированных лент и обмен контентом",
}

var ruSectionDescriptions = map[string]string{
	"p1": "Пожалуйста, укажите следующую информацию перед началом опроса.",
	"p2": "Подростки живут в мире, где каждая прокрутка, лайк и репост формируют персонализированный цифровой опыт, " +
		"незаметно влияющий на их настроение, интересы и идентичность. Исходя из вашего опыта цифрового потребления, " +
		"укажите степень согласия с утверждениями.",
	"p3": "Оценка восприятия показывает, как подростки интерпретируют то, что им показывают алгоритмы, и насколько им доверяют: " +
		"когда более 70% контента персонализировано, это определяет, что кажется реальным, важным и достойным внимания. " +
		"Укажите ваше восприятие следующих утверждений.",
	"p4": "Личная концентрация и эмоциональное благополучие показывают, как постоянное взаимодействие с алгоритмами " +
		"влияет на внимание и настроение. Укажите, как часто вы испытываете следующее.",
	"p5": "Частота использования интернета показывает, насколько поколение Z всегда на связи. " +
		"Укажите, насколько часто эти утверждения описывают ваше поведение в сети.",
	"p6": "Обсуждение и обмен контентом показывают, как подростки превращают рекомендации алгоритмов в повод для разговора. " +
		"Укажите, насколько вы согласны с утверждениями о том, как вы обсуждаете персональные рекомендации " +
		"(например, видео TikTok, Instagram Reels, YouTube Shorts) с друзьями и делитесь ими.",
}

// ruQuestions follows the flat question order of the catalog.
var ruQuestions = []string{
	// P2
	"Я сознательно ограничиваю время перед экраном.",
	"Я могу контролировать, сколько времени провожу за экранами.",
	"Я часто теряю счёт времени, пользуясь гаджетами.",
	"Я готов(а) нести ответственность за негативные последствия использования гаджетов.",
	"Использование гаджетов помогает мне достигать личных или профессиональных целей.",
	"Экранное время отвлекает меня от важных дел.",
	"Я использую цифровые технологии в основном для целенаправленной деятельности.",
	"Я чувствую, что мои действия имеют значение в онлайн-сообществах.",
	"Я могу положительно влиять на других в цифровом пространстве.",
	"Я чувствую себя беспомощным(ой) в онлайн-среде.",
	"Я чувствую поддержку, когда люди общаются со мной онлайн.",
	"Онлайн-связи помогают мне в трудные времена.",
	"Неподобающее поведение других людей в сети вызывает у меня стресс или раздражение.",
	"Мне приятно, когда люди в сети ведут себя уважительно.",
	"Я ценю, когда пользователи думают об уместности контента, прежде чем им поделиться.",
	"Уважительное поведение делает онлайн-пространство приятным.",
	"Онлайн-пространство часто кажется враждебным или неуважительным.",
	// P3
	"В большинстве отношений моя жизнь близка к идеалу.",
	"Условия моей жизни превосходны.",
	"Я доволен(льна) своей жизнью.",
	"До сих пор я получал(а) то важное, чего хотел(а) в жизни.",
	"Если бы я мог(ла) прожить жизнь заново, я бы почти ничего не изменил(а).",
	"Я контролирую информацию, которую указываю в социальных сетях.",
	"Настройки приватности позволяют мне полностью контролировать информацию, которую я указываю в социальных сетях.",
	"Я контролирую, кто может видеть мою информацию в социальных сетях.",
	"Я очень привязан(а) к своим онлайн-сообществам (форумы, группы в соцсетях, онлайн-игры).",
	"У меня и других участников моих онлайн-сообществ общие цели.",
	"Дружба с другими участниками онлайн-сообществ очень много для меня значит.",
	"Я считаю себя частью своих онлайн-сообществ.",
	"Я участвую в жизни онлайн-сообщества, потому что это помогает мне достигать личных целей.",
	// P4
	"Мне легко сосредоточиться на том, что я делаю.",
	"Я могу выносить эмоциональную боль.",
	"Я могу принять то, что не в силах изменить.",
	"Обычно я могу подробно описать, что чувствую в данный момент.",
	"Мне легко следить за своими мыслями и чувствами.",
	"Я стараюсь замечать свои мысли, не осуждая их.",
	"Я могу принять свои мысли и чувства.",
	"Я могу сосредоточиться на настоящем моменте.",
	"Я могу долго удерживать внимание на одном деле.",
	"В последнее время я с оптимизмом смотрю в будущее.",
	"В последнее время я чувствую себя полезным(ой).",
	"В последнее время я чувствую себя расслабленно.",
	"В последнее время я хорошо справляюсь с проблемами.",
	"В последнее время я мыслю ясно.",
	"В последнее время я чувствую близость с другими людьми.",
	"В последнее время я сам(а) принимаю решения.",
	// P5
	"Я провожу время в интернете, когда предпочёл(ла) бы спать.",
	"Я чувствую напряжение, раздражение или стресс, если не могу пользоваться интернетом столько, сколько хочу.",
	"Я хочу сократить время в интернете, но у меня не получается.",
	"Я стараюсь скрывать, сколько времени провожу в интернете.",
	"Близкие жалуются, что я провожу слишком много времени в интернете.",
	"Я чувствую подавленность, перепады настроения или нервозность, когда я не в сети, и это проходит, как только я снова онлайн.",
	// P6
	"Рекомендованные мне видео и посты обычно соответствуют моим интересам.",
	"Моя лента рекомендаций помогает узнавать новую и полезную информацию.",
	"Мне становится скучно, когда рекомендации повторяются.",
	"Я считаю, что лента рекомендаций улучшает мой общий опыт в соцсетях.",
	"Я часто делюсь рекомендованными видео и постами с друзьями.",
	"Мы с друзьями часто обсуждаем контент из наших лент.",
	"Мы сравниваем, насколько похожи или различаются наши ленты.",
	"Обмен персонализированным контентом помогает мне общаться с другими.",
	"Иногда я чувствую давление поделиться контентом, который в тренде в моей ленте.",
}

var ruStrings = map[string]string{
	"landing.title":    "Подростки, молодёжь и алгоритмы",
	"landing.subtitle": "Как персонализация формирует цифровую жизнь",
	"landing.body1": "Этот опрос исследует, как рекомендательные системы на основе алгоритмов влияют на удовлетворённость, " +
		"концентрацию, эмоции и онлайн-общение подростков и молодых людей.",
	"landing.body2": "После прохождения опроса вы получите персональные результаты по следующим направлениям:",
	"landing.dimensions": "• Удовлетворённость жизнью\n• Цифровая саморегуляция\n• Приватность и контроль в сети\n" +
		"• Эмоциональная устойчивость\n• Проблемное использование интернета / тревожность\n• Вовлечённость в сообщества\n" +
		"• Социальное давление\n• Удовлетворённость рекомендациями",
	"landing.note":         "Ваши ответы анонимны и помогают исследованиям делать технологии более осознанными и человечными.",
	"landing.takeTest":     "Пройти тест",
	"landing.obtainResult": "Получить результат",

	"help.text": "Доступные команды:\n\n" +
		"/start - Приветствие\n" +
		"/survey - Пройти тест\n" +
		"/result <id> - Результаты по ID опроса\n" +
		"/lang <en|ru> - Сменить язык\n" +
		"/cancel - Прервать текущий опрос\n" +
		"/help - Показать эту справку",

	"consent.question": "Перед началом: согласны ли вы на сбор и обработку ваших анонимных ответов в исследовательских целях?",
	"consent.agree":    "Согласен(на)",
	"consent.decline":  "Отказываюсь",
	"declined.text":    "Вы не дали согласие на сбор данных. Вы можете вернуться в любое время с командой /survey.",

	"survey.sectionInstruction": "Исходя из вашего опыта, укажите степень согласия с каждым утверждением.",
	"survey.agePrompt":          "Возраст (например, 19)",
	"survey.genderPrompt":       "Пол",
	"survey.screenTimePrompt":   "Среднее экранное время в часах в день (только число, например 3 или 4.5)",
	"survey.male":               "Мужской",
	"survey.female":             "Женский",
	"survey.preferNotToSay":     "Предпочитаю не указывать",

	"survey.errors.age_required":           "Укажите возраст.",
	"survey.errors.age_not_number":         "Введите только число (без букв и символов).",
	"survey.errors.age_out_of_range":       "Введите значение от 18 до 22.",
	"survey.errors.gender_required":        "Выберите пол.",
	"survey.errors.screen_time_required":   "Укажите среднее экранное время.",
	"survey.errors.screen_time_not_number": "Введите только число (например, 3 или 4.5). Без букв и других символов.",
	"survey.errors.screen_time_negative":   "Введите 0 или больше.",

	"survey.questionCounter": "Вопрос %d из %d",
	"survey.currentAnswer":   "Текущий ответ: %s",
	"survey.chooseOption":    "Пожалуйста, выберите один из вариантов ниже.",
	"survey.prevSection":     "⬅ Предыдущий раздел",
	"survey.nextSection":     "Следующий раздел ➡",
	"survey.submit":          "Отправить",
	"survey.review":          "Вы дошли до конца опроса. Нажмите «Отправить», чтобы отправить ответы.",
	"survey.answerAll":       "Пожалуйста, ответьте на все вопросы перед отправкой.",
	"survey.submitted":       "Спасибо! Ваши ответы отправлены.\n\nID вашего опроса: %s\n\nСохраните его, чтобы позже посмотреть результаты командой /result %s",
	"survey.submitFailed":    "Не удалось отправить опрос: %s\n\nПопробуйте ещё раз.",
	"survey.notStarted":      "Сейчас нет активного опроса. Используйте /survey, чтобы пройти тест.",
	"survey.cancelled":       "Опрос остановлен. Начать заново можно командой /survey.",

	"result.title":     "📊 Ваши результаты",
	"result.id":        "ID: %s",
	"result.loadError": "Не удалось загрузить результаты. Попробуйте ещё раз.",

	"obtain.description":     "Введите ID опроса, полученный после прохождения теста.",
	"obtain.errorIdRequired": "Пожалуйста, введите ID опроса.",
	"obtain.errorNotFound":   "Результаты для этого ID не найдены. Проверьте ID и попробуйте снова.",

	"lang.prompt":  "Выберите язык",
	"lang.changed": "Язык изменён на русский.",
	"lang.unknown": "Язык не поддерживается. Доступны: en, ru.",

	"likert.1": "Полностью не согласен",
	"likert.2": "Не согласен",
	"likert.3": "Скорее не согласен",
	"likert.4": "Ни согласен, ни не согласен",
	"likert.5": "Скорее согласен",
	"likert.6": "Согласен",
	"likert.7": "Полностью согласен",
}
