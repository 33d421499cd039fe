package translate

// DefaultDictionaries the sample phrasebook bundled with the app. Languages
// without an entry here are still supported and fall through to a placeholder.
func DefaultDictionaries() Dictionaries {
	return Dictionaries{
		"th": NewDictionary(
			Entry{"Hello", "สวัสดี (Sawasdee)"},
			Entry{"Thank you", "ขอบคุณ (Khop khun)"},
			Entry{"Goodbye", "ลาก่อน (La gon)"},
			Entry{"How much is this?", "อันนี้เท่าไหร่ (An nee tao rai)"},
			Entry{"Where is the bathroom?", "ห้องน้ำอยู่ที่ไหน (Hong nam yoo tee nai)"},
			Entry{"I need help", "ฉันต้องการความช่วยเหลือ (Chan tong kan kwam chuay luea)"},
			Entry{"Excuse me", "ขอโทษ (Kho thot)"},
			Entry{"Yes", "ใช่ (Chai)"},
			Entry{"No", "ไม่ (Mai)"},
			Entry{"Good morning", "อรุณสวัสดิ์ (Arun sawat)"},
			Entry{"Where is the train station?", "สถานีรถไฟอยู่ที่ไหน (Sathani rot fai yoo tee nai)"},
			Entry{"The bill, please", "เช็คบิลด้วย (Check bin duay)"},
			Entry{"I don't understand", "ฉันไม่เข้าใจ (Chan mai kao jai)"},
			Entry{"Do you speak English?", "คุณพูดภาษาอังกฤษได้ไหม (Khun phut phasa angkrit dai mai)"},
		),
		"vi": NewDictionary(
			Entry{"Hello", "Xin chào"},
			Entry{"Thank you", "Cảm ơn"},
			Entry{"Goodbye", "Tạm biệt"},
			Entry{"How much is this?", "Cái này bao nhiêu tiền?"},
			Entry{"Where is the bathroom?", "Nhà vệ sinh ở đâu?"},
			Entry{"I need help", "Tôi cần giúp đỡ"},
			Entry{"Excuse me", "Xin lỗi"},
			Entry{"Yes", "Vâng"},
			Entry{"No", "Không"},
			Entry{"Good morning", "Chào buổi sáng"},
			Entry{"Where is the train station?", "Ga tàu ở đâu?"},
			Entry{"The bill, please", "Tính tiền"},
			Entry{"I don't understand", "Tôi không hiểu"},
			Entry{"Do you speak English?", "Bạn có nói tiếng Anh không?"},
		),
		"ja": NewDictionary(
			Entry{"Hello", "こんにちは (Konnichiwa)"},
			Entry{"Thank you", "ありがとう (Arigatou)"},
			Entry{"Goodbye", "さようなら (Sayounara)"},
			Entry{"How much is this?", "これはいくらですか (Kore wa ikura desu ka)"},
			Entry{"Where is the bathroom?", "トイレはどこですか (Toire wa doko desu ka)"},
			Entry{"I need help", "助けてください (Tasukete kudasai)"},
			Entry{"Excuse me", "すみません (Sumimasen)"},
			Entry{"Yes", "はい (Hai)"},
			Entry{"No", "いいえ (Iie)"},
			Entry{"Good morning", "おはようございます (Ohayou gozaimasu)"},
			Entry{"Where is the train station?", "駅はどこですか (Eki wa doko desu ka)"},
			Entry{"The bill, please", "お会計お願いします (Okaikei onegaishimasu)"},
			Entry{"I don't understand", "わかりません (Wakarimasen)"},
			Entry{"Do you speak English?", "英語を話せますか (Eigo wo hanasemasu ka)"},
		),
		"ko": NewDictionary(
			Entry{"Hello", "안녕하세요 (Annyeonghaseyo)"},
			Entry{"Thank you", "감사합니다 (Gamsahamnida)"},
			Entry{"Goodbye", "안녕히 계세요 (Annyeonghi gyeseyo)"},
			Entry{"How much is this?", "이거 얼마예요? (Igeo eolmayeyo?)"},
			Entry{"Where is the bathroom?", "화장실이 어디예요? (Hwajangsiri eodiyeyo?)"},
			Entry{"I need help", "도와주세요 (Dowajuseyo)"},
			Entry{"Excuse me", "실례합니다 (Sillyehamnida)"},
			Entry{"Yes", "네 (Ne)"},
			Entry{"No", "아니요 (Aniyo)"},
			Entry{"Good morning", "좋은 아침이에요 (Joeun achimieyo)"},
			Entry{"The bill, please", "계산서 주세요 (Gyesanseo juseyo)"},
			Entry{"I don't understand", "이해하지 못해요 (Ihaehaji motaeyo)"},
		),
		"zh": NewDictionary(
			Entry{"Hello", "你好 (Nǐ hǎo)"},
			Entry{"Thank you", "谢谢 (Xièxie)"},
			Entry{"Goodbye", "再见 (Zàijiàn)"},
			Entry{"How much is this?", "这个多少钱？ (Zhège duōshǎo qián?)"},
			Entry{"Where is the bathroom?", "洗手间在哪里？ (Xǐshǒujiān zài nǎlǐ?)"},
			Entry{"I need help", "我需要帮助 (Wǒ xūyào bāngzhù)"},
			Entry{"Excuse me", "打扰一下 (Dǎrǎo yīxià)"},
			Entry{"Yes", "是 (Shì)"},
			Entry{"No", "不是 (Bú shì)"},
			Entry{"Where is the train station?", "火车站在哪里？ (Huǒchēzhàn zài nǎlǐ?)"},
			Entry{"The bill, please", "请结账 (Qǐng jiézhàng)"},
			Entry{"I don't understand", "我不明白 (Wǒ bù míngbai)"},
		),
		"fr": NewDictionary(
			Entry{"Hello", "Bonjour"},
			Entry{"Thank you", "Merci"},
			Entry{"Goodbye", "Au revoir"},
			Entry{"How much is this?", "Combien ça coûte ?"},
			Entry{"Where is the bathroom?", "Où sont les toilettes ?"},
			Entry{"I need help", "J'ai besoin d'aide"},
			Entry{"Excuse me", "Excusez-moi"},
			Entry{"Yes", "Oui"},
			Entry{"No", "Non"},
			Entry{"Good morning", "Bonjour"},
			Entry{"Where is the train station?", "Où est la gare ?"},
			Entry{"The bill, please", "L'addition, s'il vous plaît"},
			Entry{"I don't understand", "Je ne comprends pas"},
			Entry{"Do you speak English?", "Parlez-vous anglais ?"},
		),
		"es": NewDictionary(
			Entry{"Hello", "Hola"},
			Entry{"Thank you", "Gracias"},
			Entry{"Goodbye", "Adiós"},
			Entry{"How much is this?", "¿Cuánto cuesta esto?"},
			Entry{"Where is the bathroom?", "¿Dónde está el baño?"},
			Entry{"I need help", "Necesito ayuda"},
			Entry{"Excuse me", "Disculpe"},
			Entry{"Yes", "Sí"},
			Entry{"No", "No"},
			Entry{"Good morning", "Buenos días"},
			Entry{"Where is the train station?", "¿Dónde está la estación de tren?"},
			Entry{"The bill, please", "La cuenta, por favor"},
			Entry{"I don't understand", "No entiendo"},
			Entry{"Do you speak English?", "¿Habla inglés?"},
		),
		"de": NewDictionary(
			Entry{"Hello", "Hallo"},
			Entry{"Thank you", "Danke"},
			Entry{"Goodbye", "Auf Wiedersehen"},
			Entry{"How much is this?", "Wie viel kostet das?"},
			Entry{"Where is the bathroom?", "Wo ist die Toilette?"},
			Entry{"I need help", "Ich brauche Hilfe"},
			Entry{"Excuse me", "Entschuldigung"},
			Entry{"Yes", "Ja"},
			Entry{"No", "Nein"},
			Entry{"Good morning", "Guten Morgen"},
			Entry{"Where is the train station?", "Wo ist der Bahnhof?"},
			Entry{"The bill, please", "Die Rechnung, bitte"},
			Entry{"I don't understand", "Ich verstehe nicht"},
		),
		"it": NewDictionary(
			Entry{"Hello", "Ciao"},
			Entry{"Thank you", "Grazie"},
			Entry{"Goodbye", "Arrivederci"},
			Entry{"How much is this?", "Quanto costa?"},
			Entry{"Where is the bathroom?", "Dov'è il bagno?"},
			Entry{"Excuse me", "Mi scusi"},
			Entry{"Good morning", "Buongiorno"},
			Entry{"The bill, please", "Il conto, per favore"},
		),
		"pt": NewDictionary(
			Entry{"Hello", "Olá"},
			Entry{"Thank you", "Obrigado"},
			Entry{"Goodbye", "Adeus"},
			Entry{"How much is this?", "Quanto custa isto?"},
			Entry{"Where is the bathroom?", "Onde fica a casa de banho?"},
			Entry{"Excuse me", "Com licença"},
			Entry{"Good morning", "Bom dia"},
			Entry{"The bill, please", "A conta, por favor"},
		),
		"id": NewDictionary(
			Entry{"Hello", "Halo"},
			Entry{"Thank you", "Terima kasih"},
			Entry{"Goodbye", "Selamat tinggal"},
			Entry{"How much is this?", "Berapa harganya?"},
			Entry{"Where is the bathroom?", "Di mana kamar mandi?"},
			Entry{"I need help", "Saya butuh bantuan"},
			Entry{"Excuse me", "Permisi"},
			Entry{"Yes", "Ya"},
			Entry{"No", "Tidak"},
			Entry{"Good morning", "Selamat pagi"},
			Entry{"Where is the train station?", "Di mana stasiun kereta?"},
			Entry{"The bill, please", "Minta bon"},
			Entry{"I don't understand", "Saya tidak mengerti"},
		),
	}
}
