package render

import "github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"

// WelcomeTemplateID identifica o e-mail de boas-vindas, que não passa
// pela TRANSACTION_LOG.
const WelcomeTemplateID = "welcome"

// Corpos portados dos jobs de e-mail originais da Aquanimal.
func init() {
	register(string(domain.ReceiptIssuedCode), "Nota Fiscal",
		[]string{"nome", "nf", "key"}, receiptIssuedBody)
	register(string(domain.OrderConfirmedCode), "Recebemos o seu pedido.",
		[]string{"ped"}, orderConfirmedBody)
	register(string(domain.OrderShippedCode), "Pedido Enviado!",
		[]string{"nome", "ped"}, orderShippedBody)
	register(string(domain.PickupReadyCode), "Pedido pronto para retirada!",
		[]string{"nome", "ped"}, pickupReadyBody)
	register(string(domain.PaymentDeclinedCode), "Cartão não autorizado.",
		[]string{"nome", "ped"}, paymentDeclinedBody)
	register(string(domain.PasswordResetCode), "Reset de Senha",
		[]string{"senha"}, passwordResetBody)
	register(WelcomeTemplateID, "Seu cadastro Aquanimal", nil, welcomeBody)
}

const receiptIssuedBody = `
<html>
<body>
<img src="https://aquanimal.com.br/images/mailogo.jpg" style="width: 200px"><br>
Ola {{.nome}},
<br><br>
Uma nova Nota Fiscal foi gerada para você, seu pedido poderá ser enviado ainda hoje.
<br>
Nota Fiscal: {{.nf}}<br>
Chave de Acesso: {{.key}}<br>
<br>
Agradecemos o seu pedido e esperamos atendê-lo novamente em breve.<br>
Equipe Aquanimal.
</body>
</html>
`

const orderConfirmedBody = `
<html><body><img src="https://aquanimal.com.br/images/mailogo.jpg"><br><br><font face="Verdana,Arial" size=2><b>Pedido {{.ped}} - Recebido com Sucesso.</b><br><br>Prezado Cliente,<br><br>Gostaríamos de informar que sua compra já foi recebida com sucesso e será processada em breve.<br>Lembre-se que, de acordo com as instruções do -como comprar- em nosso site, o prazo para envio pode variar entre 5 a 15 dias. Itens mais populares e que tem uma boa saída são mantidos em estoque a pronta entrega e enviados mais rápido. Itens com menor giro trabalhamos com o estoque do fornecedor, por isso podem demorar mais tempo.<br>Animais de água doce normalmente tem alto estoque e são enviados em até uma semana, entretanto os marinhos ou doces que necessitam de cuidado especial como quarentena diferenciada para envio, podem demorar até 15 dias. O mesmo se aplica para os casos de cliente retira! Quanto ao envio, a sua encomenda será entregue no endereço cadastrado por você, e o prazo de transporte pode variar de acordo com a sua cidade, mas não se preocupe! Nossas embalagens seguem um protocolo de acordo com o tempo da viagem para que os animais cheguem em completa segurança. Logo após o envio do seu pedido você recebe um e-mail dizendo que ele foi despachado, e assim, pode se programar melhor para recebe-lo.<br><br><a href="https://aquanimal.com.br/Orders">Clique aqui acessar os dados de depósito ou para acompanhar o seu pedido.</a><br><br><br>Agradecemos por comprar conosco!<br>Aquanimal</font></body></html>
`

const orderShippedBody = `
<html>
<body>
<img src="https://aquanimal.com.br/images/mailogo.jpg" style="width: 200px"><br>
<font face="Verdana,Arial" size=2><br>
Ol&aacute; {{.nome}},<br><br>
Informamos que seu pedido {{.ped}} foi enviado na data de hoje.<br><br>
Escolhemos sempre a melhor maneira de envio para a sua cidade!<br><br>
Para envios via <b>JADLOG</b> o rastreio poder&aacute; ser feito hoje ap&oacute;s as 20h, direto no site da transportadora www.jadlog.com.br, com seu CPF.<br><br>
Para envios pela transportadora <b>BUSLOG</b>, voc&ecirc; receber&aacute; via whatsapp o <b>n&uacute;mero da encomenda</b> para rastreio direto no site https://envio.buslog.com.br/rastreamento - Voc&ecirc; tamb&eacute;m poder&aacute; usar o seu CPF.<br><br>
Se voc&ecirc; reside na regi&atilde;o Norte, Nordeste ou algumas cidades do Centro Oeste ou escolheu Retira Aeroporto, a sua carga foi enviada via <b>GOLLOG</b>. No final do dia, voc&ecirc; receber&aacute; via whatsapp o <b>n&uacute;mero operacional</b> para rastreio direto no site - https://servicos.gollog.com.br/app/site/tracking<br><br>
Cargas enviadas via <b>JADLOG</b> e <b>BUSLOG</b> ser&atilde;o entregues no endere&ccedil;o indicado, ou retirados na transportadora, conforme acordado com a Aquanimal.<br><br>
Cargas enviadas via aeroporto, dever&atilde;o ser retiradas no <b>Galp&atilde;o da GOLLOG</b> no aeroporto escolhido por voc&ecirc;.<br><br>
Caso o seu pedido seja apenas de produtos, enviamos via <b>CORREIOS</b> e voc&ecirc; poder&aacute; verificar em nosso site, atrav&eacute;s do link <b>Meus Pedidos</b> o c&oacute;digo de rastreamento do seu PAC.<br><br>
Fazemos embalagem para que os peixes fiquem confort&aacute;veis durante a viagem, a maioria dos envios leva at&eacute; 3 dias, caso n&atilde;o ocorra neste prazo, por favor entre em contato, lembramos que as trasnportadoras n&atilde;o fazem entregas nos finais de semana nem feriados.<br><br>
Abaixo, nossas instru&ccedil;&otilde;es de como receber os peixes novos no seu aqu&aacute;rio, tamb&eacute;m enviamos as mesmas instru&ccedil;&otilde;es em uma cartinha dentro da sua encomenda.<br><br>
NUNCA COLOQUE A &Aacute;GUA DO AQU&Aacute;RIO NO SAQUINHO COM O PEIXE<br><br>
1 - Apague a luz do aqu&aacute;rio para reduzir o estresse do peixe.<br>
2 - Deixe o saco fechado boiando na &aacute;gua do aqu&aacute;rio por 10 minutos para igualar a temperatura.<br>
3 - Corte o saquinho e descarte a &aacute;gua fora, em seguida, coloque o peixe direto no aqu&aacute;rio.<br>
4 - Acenda a luz novamente em algumas horas.<br><br>
Para saber mais, acesse http://blog.aquanimal.com.br/2016/05/aclimatizando-seu-novo-peixe-de-agua.html<br><br>
Obrigada por comprar conosco!<br><br>
Aquanimal<br>
www.aquanimal.com.br<br>
Whatsapp 11 9 9221-2363
</body>
</html>
`

const pickupReadyBody = `
Ol&aacute; {{.nome}},<br><br>
<b>Agradecemos por comprar conosco.</b><br><br>
Gostaríamos de informar que o seu pedido {{.ped}} já está pronto para ser retirado em nossa loja.<br><br>
Nosso endereço se encontra no rodap&eacute; de nosso site.<br><br>
Aquanimal
`

const paymentDeclinedBody = `
Ol&aacute; {{.nome}},<br><br>
O seu pedido {{.ped}} n&atilde;o pode ser conclu&iacute;do.<br>
A operadora do seu cart&atilde;o de cr&eacute;dito n&atilde;o autorizou a transa&ccedil;&atilde;o.<br>
Entre em contato com sua administradora e nos retorne.<br>
Se tiver d&uacute;vidas, entre em contato com o nosso e-mail <a href="mailto:aquanimal@aquanimal.com.br">aquanimal@aquanimal.com.br</a>, ou pelo telefone.<br><br>
Atenciosamente.<br>Aquanimal</br>
`

const passwordResetBody = `
Segue sua senha tempor&aacute;ria: {{.senha}}<br>
Altere essa senha o mais r&aacute;pido poss&iacute;vel em nosso site, no link "Cadastro".
<br><br>
Atenciosamente. <br>Aquanimal
`

const welcomeBody = `
<html>
<head></head>
<body>
    <h2>Olá!</h2>
    <p>Tivemos um problema técnico hoje e alguns cadastros não foram concluídos com sucesso.</p>
    <p>Gostaríamos de informar que <strong>no momento o sistema já está normalizado</strong>.</p>
    <p><strong>Seu cadastro encontra-se ativo e pronto para uso!</strong></p>
    <p>Estamos felizes em ter você conosco! 🎉</p>
    <br>
    <p>Atenciosamente,<br>
    <strong>Equipe Aquanimal</strong></p>
    <p><a href='https://aquanimal.com.br'>aquanimal.com.br</a></p>
    <hr>
    <p style='font-size: 12px; color: #666;'>
        Este é um email automático. Por favor, não responda.
    </p>
</body>
</html>
`

// WelcomeText é o corpo em texto plano do e-mail de boas-vindas.
const WelcomeText = `
Olá!

Tivemos um problema técnico hoje e alguns cadastros não foram concluídos com sucesso.

Gostaríamos de informar que no momento o sistema já está normalizado.

Seu cadastro encontra-se ativo e pronto para uso!

Estamos felizes em ter você conosco!

Atenciosamente,
Equipe Aquanimal

aquanimal.com.br

---
Este é um email automático. Por favor, não responda.
`
